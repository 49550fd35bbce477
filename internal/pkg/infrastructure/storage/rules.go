package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

const alarmRuleColumns = `rule_id, tenant, name, metric_name, threshold_value, threshold_operator,
	evaluation_window, device_type, device_tags, alarm_type, severity, title_template,
	description_template, enabled`

func scanAlarmRule(scan func(dest ...any) error, extra ...any) (types.AlarmRule, error) {
	var r types.AlarmRule
	var operator, severity string
	var deviceTags []byte

	dest := []any{
		&r.ID, &r.Tenant, &r.Name, &r.MetricName, &r.ThresholdValue, &operator,
		&r.EvaluationWindow, &r.DeviceType, &deviceTags, &r.AlarmType, &severity,
		&r.TitleTemplate, &r.DescriptionTemplate, &r.Enabled,
	}
	dest = append(dest, extra...)

	err := scan(dest...)
	if err != nil {
		return types.AlarmRule{}, err
	}

	r.ThresholdOperator = types.ThresholdOperator(operator)
	r.Severity = types.AlarmSeverity(severity)

	if deviceTags != nil {
		_ = json.Unmarshal(deviceTags, &r.DeviceTags)
	}

	return r, nil
}

func (s *Storage) AddAlarmRule(ctx context.Context, rule types.AlarmRule) error {
	if rule.ID == "" {
		return ErrNoID
	}
	if rule.Tenant == "" {
		return ErrMissingTenant
	}

	args := pgx.NamedArgs{
		"rule_id":              rule.ID,
		"tenant":               rule.Tenant,
		"name":                 rule.Name,
		"metric_name":          rule.MetricName,
		"threshold_value":      rule.ThresholdValue,
		"threshold_operator":   string(rule.ThresholdOperator),
		"evaluation_window":    rule.EvaluationWindow,
		"device_type":          rule.DeviceType,
		"alarm_type":           rule.AlarmType,
		"severity":             string(rule.Severity),
		"title_template":       rule.TitleTemplate,
		"description_template": rule.DescriptionTemplate,
		"enabled":              rule.Enabled,
	}

	args["device_tags"] = nil
	if len(rule.DeviceTags) > 0 {
		if b, err := json.Marshal(rule.DeviceTags); err == nil {
			args["device_tags"] = string(b)
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO alarm_rules (%s)
		VALUES (@rule_id, @tenant, @name, @metric_name, @threshold_value, @threshold_operator,
			@evaluation_window, @device_type, @device_tags, @alarm_type, @severity,
			@title_template, @description_template, @enabled)
		ON CONFLICT (rule_id) DO UPDATE SET
			name = EXCLUDED.name,
			metric_name = EXCLUDED.metric_name,
			threshold_value = EXCLUDED.threshold_value,
			threshold_operator = EXCLUDED.threshold_operator,
			evaluation_window = EXCLUDED.evaluation_window,
			device_type = EXCLUDED.device_type,
			device_tags = EXCLUDED.device_tags,
			alarm_type = EXCLUDED.alarm_type,
			severity = EXCLUDED.severity,
			title_template = EXCLUDED.title_template,
			description_template = EXCLUDED.description_template,
			enabled = EXCLUDED.enabled,
			modified_on = CURRENT_TIMESTAMP
	`, alarmRuleColumns)

	_, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryAlarmRules(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.AlarmRule], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM alarm_rules
		WHERE %s
		ORDER BY name ASC
		OFFSET %d LIMIT %d
	`, alarmRuleColumns, condition.Where(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.AlarmRule]{}, err
	}
	defer rows.Close()

	rules := make([]types.AlarmRule, 0)

	var count int64

	for rows.Next() {
		rule, err := scanAlarmRule(rows.Scan, &count)
		if err != nil {
			return types.Collection[types.AlarmRule]{}, err
		}
		rules = append(rules, rule)
	}
	if rows.Err() != nil {
		return types.Collection[types.AlarmRule]{}, rows.Err()
	}

	return types.Collection[types.AlarmRule]{
		Data:       rules,
		Count:      uint64(len(rules)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlarmRule(ctx context.Context, conditions ...ConditionFunc) (types.AlarmRule, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM alarm_rules
		WHERE %s
	`, alarmRuleColumns, condition.Where())

	row := s.pool.QueryRow(ctx, query, condition.NamedArgs())

	rule, err := scanAlarmRule(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.AlarmRule{}, ErrNoRows
		}
		return types.AlarmRule{}, err
	}

	return rule, nil
}

const eventRuleColumns = `rule_id, tenant, name, event_type_pattern, severities, device_type,
	action, escalate_to, correlation_window, key_fields, enabled`

func scanEventRule(scan func(dest ...any) error, extra ...any) (types.EventRule, error) {
	var r types.EventRule
	var action, escalateTo string
	var severities, keyFields []byte

	dest := []any{
		&r.ID, &r.Tenant, &r.Name, &r.EventTypePattern, &severities, &r.DeviceType,
		&action, &escalateTo, &r.CorrelationWindow, &keyFields, &r.Enabled,
	}
	dest = append(dest, extra...)

	err := scan(dest...)
	if err != nil {
		return types.EventRule{}, err
	}

	r.Action = types.EventRuleAction(action)
	r.EscalateTo = types.EventSeverity(escalateTo)

	if severities != nil {
		_ = json.Unmarshal(severities, &r.Severities)
	}
	if keyFields != nil {
		_ = json.Unmarshal(keyFields, &r.KeyFields)
	}

	return r, nil
}

func (s *Storage) AddEventRule(ctx context.Context, rule types.EventRule) error {
	if rule.ID == "" {
		return ErrNoID
	}
	if rule.Tenant == "" {
		return ErrMissingTenant
	}

	args := pgx.NamedArgs{
		"rule_id":            rule.ID,
		"tenant":             rule.Tenant,
		"name":               rule.Name,
		"event_type_pattern": rule.EventTypePattern,
		"device_type":        rule.DeviceType,
		"action":             string(rule.Action),
		"escalate_to":        string(rule.EscalateTo),
		"correlation_window": rule.CorrelationWindow,
		"enabled":            rule.Enabled,
	}

	args["severities"] = nil
	if len(rule.Severities) > 0 {
		if b, err := json.Marshal(rule.Severities); err == nil {
			args["severities"] = string(b)
		}
	}

	args["key_fields"] = nil
	if len(rule.KeyFields) > 0 {
		if b, err := json.Marshal(rule.KeyFields); err == nil {
			args["key_fields"] = string(b)
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO event_rules (%s)
		VALUES (@rule_id, @tenant, @name, @event_type_pattern, @severities, @device_type,
			@action, @escalate_to, @correlation_window, @key_fields, @enabled)
		ON CONFLICT (rule_id) DO UPDATE SET
			name = EXCLUDED.name,
			event_type_pattern = EXCLUDED.event_type_pattern,
			severities = EXCLUDED.severities,
			device_type = EXCLUDED.device_type,
			action = EXCLUDED.action,
			escalate_to = EXCLUDED.escalate_to,
			correlation_window = EXCLUDED.correlation_window,
			key_fields = EXCLUDED.key_fields,
			enabled = EXCLUDED.enabled,
			modified_on = CURRENT_TIMESTAMP
	`, eventRuleColumns)

	_, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryEventRules(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.EventRule], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM event_rules
		WHERE %s
		ORDER BY name ASC
		OFFSET %d LIMIT %d
	`, eventRuleColumns, condition.Where(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.EventRule]{}, err
	}
	defer rows.Close()

	rules := make([]types.EventRule, 0)

	var count int64

	for rows.Next() {
		rule, err := scanEventRule(rows.Scan, &count)
		if err != nil {
			return types.Collection[types.EventRule]{}, err
		}
		rules = append(rules, rule)
	}
	if rows.Err() != nil {
		return types.Collection[types.EventRule]{}, rows.Err()
	}

	return types.Collection[types.EventRule]{
		Data:       rules,
		Count:      uint64(len(rules)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
