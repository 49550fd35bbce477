package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

const alarmColumns = `alarm_id, tenant, alarm_type, severity, status, device_id, interface_id,
	service_id, customer_id, title, description, source, first_occurrence, last_occurrence,
	occurrence_count, acknowledged_at, acknowledged_by, cleared_at, cleared_by, suppression,
	escalations, correlation_id, parent_alarm_id, context, tags`

// The severity sort ranks critical first so that default listings lead with
// the most urgent alarms.
const severityOrder = `array_position(ARRAY['critical','major','minor','warning','info'], severity)`

func scanAlarm(scan func(dest ...any) error, extra ...any) (types.Alarm, error) {
	var a types.Alarm
	var severity, status string
	var suppression, escalations, context, tags []byte

	dest := []any{
		&a.ID, &a.Tenant, &a.AlarmType, &severity, &status, &a.DeviceID, &a.InterfaceID,
		&a.ServiceID, &a.CustomerID, &a.Title, &a.Description, &a.Source, &a.FirstOccurrence,
		&a.LastOccurrence, &a.OccurrenceCount, &a.AcknowledgedAt, &a.AcknowledgedBy,
		&a.ClearedAt, &a.ClearedBy, &suppression, &escalations, &a.CorrelationID,
		&a.ParentAlarmID, &context, &tags,
	}
	dest = append(dest, extra...)

	err := scan(dest...)
	if err != nil {
		return types.Alarm{}, err
	}

	a.Severity = types.AlarmSeverity(severity)
	a.Status = types.AlarmStatus(status)

	if suppression != nil {
		_ = json.Unmarshal(suppression, &a.Suppression)
	}
	if escalations != nil {
		_ = json.Unmarshal(escalations, &a.Escalations)
	}
	if context != nil {
		_ = json.Unmarshal(context, &a.Context)
	}
	if tags != nil {
		_ = json.Unmarshal(tags, &a.Tags)
	}

	return a, nil
}

func alarmArgs(alarm types.Alarm) pgx.NamedArgs {
	marshal := func(v any) *string {
		if v == nil {
			return nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	}

	args := pgx.NamedArgs{
		"alarm_id":         alarm.ID,
		"tenant":           alarm.Tenant,
		"alarm_type":       alarm.AlarmType,
		"severity":         string(alarm.Severity),
		"status":           string(alarm.Status),
		"device_id":        alarm.DeviceID,
		"interface_id":     alarm.InterfaceID,
		"service_id":       alarm.ServiceID,
		"customer_id":      alarm.CustomerID,
		"title":            alarm.Title,
		"description":      alarm.Description,
		"source":           alarm.Source,
		"first_occurrence": alarm.FirstOccurrence.UTC(),
		"last_occurrence":  alarm.LastOccurrence.UTC(),
		"occurrence_count": alarm.OccurrenceCount,
		"acknowledged_at":  alarm.AcknowledgedAt,
		"acknowledged_by":  alarm.AcknowledgedBy,
		"cleared_at":       alarm.ClearedAt,
		"cleared_by":       alarm.ClearedBy,
		"correlation_id":   alarm.CorrelationID,
		"parent_alarm_id":  alarm.ParentAlarmID,
	}

	if alarm.Suppression != nil {
		args["suppression"] = marshal(alarm.Suppression)
	} else {
		args["suppression"] = nil
	}
	if len(alarm.Escalations) > 0 {
		args["escalations"] = marshal(alarm.Escalations)
	} else {
		args["escalations"] = nil
	}
	if len(alarm.Context) > 0 {
		args["context"] = marshal(alarm.Context)
	} else {
		args["context"] = nil
	}
	if len(alarm.Tags) > 0 {
		args["tags"] = marshal(alarm.Tags)
	} else {
		args["tags"] = nil
	}

	return args
}

func (s *Storage) QueryAlarms(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alarm], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	orderBy := fmt.Sprintf("ORDER BY %s %s", condition.SortBy(), condition.SortOrder())
	if condition.SortBy() == "" {
		orderBy = fmt.Sprintf("ORDER BY %s ASC, last_occurrence DESC", severityOrder)
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM alarms
		WHERE %s
		%s
		OFFSET %d LIMIT %d
	`, alarmColumns, where, orderBy, condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}
	defer rows.Close()

	alarms := make([]types.Alarm, 0)

	var count int64

	for rows.Next() {
		alarm, err := scanAlarm(rows.Scan, &count)
		if err != nil {
			return types.Collection[types.Alarm]{}, err
		}
		alarms = append(alarms, alarm)
	}
	if rows.Err() != nil {
		return types.Collection[types.Alarm]{}, rows.Err()
	}

	return types.Collection[types.Alarm]{
		Data:       alarms,
		Count:      uint64(len(alarms)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlarm(ctx context.Context, conditions ...ConditionFunc) (types.Alarm, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM alarms
		WHERE %s
	`, alarmColumns, condition.Where())

	row := s.pool.QueryRow(ctx, query, condition.NamedArgs())

	alarm, err := scanAlarm(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alarm{}, ErrNoRows
		}
		return types.Alarm{}, err
	}

	return alarm, nil
}

// AddAlarm inserts a new alarm, or merges into the open alarm holding the
// same fault key. The partial unique index on the open fault key makes the
// find-existing-or-create step a single atomic statement, so concurrent
// ingestion of the same fault cannot create duplicate open alarms. The
// returned flag reports whether a new row was created.
func (s *Storage) AddAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error) {
	if alarm.ID == "" {
		return types.Alarm{}, false, ErrNoID
	}
	if alarm.Tenant == "" {
		return types.Alarm{}, false, ErrMissingTenant
	}

	query := fmt.Sprintf(`
		INSERT INTO alarms (%s)
		VALUES (@alarm_id, @tenant, @alarm_type, @severity, @status, @device_id, @interface_id,
			@service_id, @customer_id, @title, @description, @source, @first_occurrence,
			@last_occurrence, @occurrence_count, @acknowledged_at, @acknowledged_by, @cleared_at,
			@cleared_by, @suppression, @escalations, @correlation_id, @parent_alarm_id, @context, @tags)
		ON CONFLICT (tenant, alarm_type, device_id, interface_id) WHERE status IN ('active', 'acknowledged')
		DO UPDATE SET
			occurrence_count = alarms.occurrence_count + 1,
			last_occurrence = GREATEST(alarms.last_occurrence, EXCLUDED.last_occurrence),
			modified_on = CURRENT_TIMESTAMP
		RETURNING %s, (xmax = 0) AS inserted
	`, alarmColumns, alarmColumns)

	row := s.pool.QueryRow(ctx, query, alarmArgs(alarm))

	var inserted bool

	stored, err := scanAlarm(row.Scan, &inserted)
	if err != nil {
		return types.Alarm{}, false, err
	}

	return stored, inserted, nil
}

// MergeAlarm bumps the occurrence count and last occurrence of an open alarm.
func (s *Storage) MergeAlarm(ctx context.Context, alarmID, tenant string, observedAt time.Time) (types.Alarm, error) {
	args := pgx.NamedArgs{
		"alarm_id":    alarmID,
		"tenant":      tenant,
		"observed_at": observedAt.UTC(),
	}

	query := fmt.Sprintf(`
		UPDATE alarms
		SET occurrence_count = occurrence_count + 1,
			last_occurrence = GREATEST(last_occurrence, @observed_at),
			modified_on = CURRENT_TIMESTAMP
		WHERE alarm_id = @alarm_id AND tenant = @tenant AND status IN ('active', 'acknowledged')
		RETURNING %s
	`, alarmColumns)

	row := s.pool.QueryRow(ctx, query, args)

	alarm, err := scanAlarm(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alarm{}, ErrNoRows
		}
		return types.Alarm{}, err
	}

	return alarm, nil
}

// UpdateAlarm persists the mutable parts of an alarm. Cleared alarms are
// immutable, which the statement enforces regardless of what the caller
// believes the current status to be.
func (s *Storage) UpdateAlarm(ctx context.Context, alarm types.Alarm) error {
	args := alarmArgs(alarm)

	cmd, err := s.pool.Exec(ctx, `
		UPDATE alarms
		SET severity = @severity,
			status = @status,
			last_occurrence = @last_occurrence,
			occurrence_count = @occurrence_count,
			acknowledged_at = @acknowledged_at,
			acknowledged_by = @acknowledged_by,
			cleared_at = @cleared_at,
			cleared_by = @cleared_by,
			suppression = @suppression,
			escalations = @escalations,
			correlation_id = @correlation_id,
			parent_alarm_id = @parent_alarm_id,
			context = @context,
			tags = @tags,
			modified_on = CURRENT_TIMESTAMP
		WHERE alarm_id = @alarm_id AND tenant = @tenant AND status != 'cleared'
	`, args)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
