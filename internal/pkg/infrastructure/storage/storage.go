package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrNoID          = errors.New("data contains no id")
	ErrMissingTenant = errors.New("missing tenant information")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alarms (
			alarm_id			TEXT NOT NULL,
			tenant				TEXT NOT NULL,
			alarm_type			TEXT NOT NULL,
			severity			TEXT NOT NULL,
			status				TEXT NOT NULL DEFAULT 'active',
			device_id			TEXT NOT NULL DEFAULT '',
			interface_id		TEXT NOT NULL DEFAULT '',
			service_id			TEXT NOT NULL DEFAULT '',
			customer_id			TEXT NOT NULL DEFAULT '',
			title				TEXT NOT NULL DEFAULT '',
			description			TEXT NOT NULL DEFAULT '',
			source				TEXT NOT NULL DEFAULT '',
			first_occurrence	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_occurrence		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			occurrence_count	INT NOT NULL DEFAULT 1,
			acknowledged_at		timestamp with time zone NULL,
			acknowledged_by		TEXT NOT NULL DEFAULT '',
			cleared_at			timestamp with time zone NULL,
			cleared_by			TEXT NOT NULL DEFAULT '',
			suppression			JSONB NULL,
			escalations			JSONB NULL,
			correlation_id		TEXT NOT NULL DEFAULT '',
			parent_alarm_id		TEXT NOT NULL DEFAULT '',
			context				JSONB NULL,
			tags				JSONB NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alarms PRIMARY KEY (alarm_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS alarms_open_fault_key_idx
			ON alarms (tenant, alarm_type, device_id, interface_id)
			WHERE status IN ('active', 'acknowledged');

		CREATE INDEX IF NOT EXISTS alarms_tenant_status_idx ON alarms (tenant, status);
		CREATE INDEX IF NOT EXISTS alarms_last_occurrence_idx ON alarms (last_occurrence);

		CREATE TABLE IF NOT EXISTS alarm_rules (
			rule_id				TEXT NOT NULL,
			tenant				TEXT NOT NULL,
			name				TEXT NOT NULL,
			metric_name			TEXT NOT NULL,
			threshold_value		DOUBLE PRECISION NOT NULL,
			threshold_operator	TEXT NOT NULL,
			evaluation_window	INT NOT NULL DEFAULT 0,
			device_type			TEXT NOT NULL DEFAULT '',
			device_tags			JSONB NULL,
			alarm_type			TEXT NOT NULL,
			severity			TEXT NOT NULL,
			title_template		TEXT NOT NULL DEFAULT '',
			description_template TEXT NOT NULL DEFAULT '',
			enabled				BOOLEAN NOT NULL DEFAULT TRUE,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alarm_rules PRIMARY KEY (rule_id)
		);

		CREATE INDEX IF NOT EXISTS alarm_rules_metric_idx ON alarm_rules (tenant, metric_name) WHERE enabled;

		CREATE TABLE IF NOT EXISTS events (
			event_id			TEXT NOT NULL,
			tenant				TEXT NOT NULL,
			event_type			TEXT NOT NULL,
			severity			TEXT NOT NULL,
			category			TEXT NOT NULL DEFAULT '',
			title				TEXT NOT NULL DEFAULT '',
			description			TEXT NOT NULL DEFAULT '',
			device_id			TEXT NOT NULL DEFAULT '',
			interface_id		TEXT NOT NULL DEFAULT '',
			service_id			TEXT NOT NULL DEFAULT '',
			customer_id			TEXT NOT NULL DEFAULT '',
			previous_state		TEXT NOT NULL DEFAULT '',
			current_state		TEXT NOT NULL DEFAULT '',
			correlation_id		TEXT NOT NULL DEFAULT '',
			parent_event_id		TEXT NOT NULL DEFAULT '',
			root_cause_event_id	TEXT NOT NULL DEFAULT '',
			raw_data			JSONB NULL,
			tags				JSONB NULL,
			event_timestamp		timestamp with time zone NOT NULL,
			processed_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_events PRIMARY KEY (event_id)
		);

		CREATE INDEX IF NOT EXISTS events_device_time_idx ON events (tenant, device_id, event_timestamp);
		CREATE INDEX IF NOT EXISTS events_type_time_idx ON events (tenant, event_type, event_timestamp);
		CREATE INDEX IF NOT EXISTS events_correlation_idx ON events (tenant, correlation_id);

		CREATE TABLE IF NOT EXISTS event_rules (
			rule_id				TEXT NOT NULL,
			tenant				TEXT NOT NULL,
			name				TEXT NOT NULL,
			event_type_pattern	TEXT NOT NULL,
			severities			JSONB NULL,
			device_type			TEXT NOT NULL DEFAULT '',
			action				TEXT NOT NULL,
			escalate_to			TEXT NOT NULL DEFAULT '',
			correlation_window	INT NOT NULL DEFAULT 0,
			key_fields			JSONB NULL,
			enabled				BOOLEAN NOT NULL DEFAULT TRUE,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_event_rules PRIMARY KEY (rule_id)
		);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
