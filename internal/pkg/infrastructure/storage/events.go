package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `event_id, tenant, event_type, severity, category, title, description,
	device_id, interface_id, service_id, customer_id, previous_state, current_state,
	correlation_id, parent_event_id, root_cause_event_id, raw_data, tags, event_timestamp,
	processed_at`

func scanEvent(scan func(dest ...any) error, extra ...any) (types.NetworkEvent, error) {
	var e types.NetworkEvent
	var severity string
	var rawData, tags []byte

	dest := []any{
		&e.ID, &e.Tenant, &e.EventType, &severity, &e.Category, &e.Title, &e.Description,
		&e.DeviceID, &e.InterfaceID, &e.ServiceID, &e.CustomerID, &e.PreviousState,
		&e.CurrentState, &e.CorrelationID, &e.ParentEventID, &e.RootCauseEventID,
		&rawData, &tags, &e.EventTimestamp, &e.ProcessedAt,
	}
	dest = append(dest, extra...)

	err := scan(dest...)
	if err != nil {
		return types.NetworkEvent{}, err
	}

	e.Severity = types.EventSeverity(severity)

	if rawData != nil {
		_ = json.Unmarshal(rawData, &e.RawData)
	}
	if tags != nil {
		_ = json.Unmarshal(tags, &e.Tags)
	}

	return e, nil
}

func eventArgs(event types.NetworkEvent) pgx.NamedArgs {
	args := pgx.NamedArgs{
		"event_id":            event.ID,
		"tenant":              event.Tenant,
		"event_type":          event.EventType,
		"severity":            string(event.Severity),
		"category":            event.Category,
		"title":               event.Title,
		"description":         event.Description,
		"device_id":           event.DeviceID,
		"interface_id":        event.InterfaceID,
		"service_id":          event.ServiceID,
		"customer_id":         event.CustomerID,
		"previous_state":      event.PreviousState,
		"current_state":       event.CurrentState,
		"correlation_id":      event.CorrelationID,
		"parent_event_id":     event.ParentEventID,
		"root_cause_event_id": event.RootCauseEventID,
		"event_timestamp":     event.EventTimestamp.UTC(),
		"processed_at":        event.ProcessedAt.UTC(),
	}

	args["raw_data"] = nil
	if len(event.RawData) > 0 {
		if b, err := json.Marshal(event.RawData); err == nil {
			args["raw_data"] = string(b)
		}
	}

	args["tags"] = nil
	if len(event.Tags) > 0 {
		if b, err := json.Marshal(event.Tags); err == nil {
			args["tags"] = string(b)
		}
	}

	return args
}

func (s *Storage) AddEvent(ctx context.Context, event types.NetworkEvent) error {
	if event.ID == "" {
		return ErrNoID
	}
	if event.Tenant == "" {
		return ErrMissingTenant
	}

	query := fmt.Sprintf(`
		INSERT INTO events (%s)
		VALUES (@event_id, @tenant, @event_type, @severity, @category, @title, @description,
			@device_id, @interface_id, @service_id, @customer_id, @previous_state, @current_state,
			@correlation_id, @parent_event_id, @root_cause_event_id, @raw_data, @tags,
			@event_timestamp, @processed_at)
	`, eventColumns)

	_, err := s.pool.Exec(ctx, query, eventArgs(event))
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, conditions ...ConditionFunc) (types.NetworkEvent, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE %s
	`, eventColumns, condition.Where())

	row := s.pool.QueryRow(ctx, query, condition.NamedArgs())

	event, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.NetworkEvent{}, ErrNoRows
		}
		return types.NetworkEvent{}, err
	}

	return event, nil
}

func (s *Storage) QueryEvents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.NetworkEvent], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.SortBy() == "" {
		condition.sortBy = "event_timestamp"
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM events
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, eventColumns, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.NetworkEvent]{}, err
	}
	defer rows.Close()

	events := make([]types.NetworkEvent, 0)

	var count int64

	for rows.Next() {
		event, err := scanEvent(rows.Scan, &count)
		if err != nil {
			return types.Collection[types.NetworkEvent]{}, err
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return types.Collection[types.NetworkEvent]{}, rows.Err()
	}

	return types.Collection[types.NetworkEvent]{
		Data:       events,
		Count:      uint64(len(events)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// UpdateEventCorrelation writes back the correlation outcome together with
// any severity or tag changes the rule engine made. Correlation id
// assignment is last-writer-wins.
func (s *Storage) UpdateEventCorrelation(ctx context.Context, event types.NetworkEvent) error {
	args := eventArgs(event)

	cmd, err := s.pool.Exec(ctx, `
		UPDATE events
		SET severity = @severity,
			correlation_id = @correlation_id,
			parent_event_id = @parent_event_id,
			root_cause_event_id = @root_cause_event_id,
			tags = @tags,
			processed_at = @processed_at
		WHERE event_id = @event_id AND tenant = @tenant
	`, args)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
