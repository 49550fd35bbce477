package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

// FaultKey identifies the fault an alarm represents. Deduplication treats
// empty scope refs as part of the key, so all four parts match exactly.
type FaultKey struct {
	Tenant      string
	AlarmType   string
	DeviceID    string
	InterfaceID string
}

type Condition struct {
	AlarmID string
	EventID string
	RuleID  string

	Tenant  string
	Tenants []string

	AlarmTypes []string
	EventTypes []string
	Statuses   []string
	Severities []string

	DeviceID    string
	InterfaceID string
	ServiceID   string
	CustomerID  string
	MetricName  string

	CorrelationID  string
	ParentEventIDs []string

	LastOccurrenceAfter   time.Time
	EventTimeAfter        time.Time
	EventTimeBefore       time.Time
	SuppressedUntilBefore time.Time

	Enabled *bool

	faultKey *FaultKey

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 100
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlarmID != "" {
		args["alarm_id"] = c.AlarmID
	}
	if c.EventID != "" {
		args["event_id"] = c.EventID
	}
	if c.RuleID != "" {
		args["rule_id"] = c.RuleID
	}
	if c.Tenant != "" {
		args["tenant"] = c.Tenant
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if len(c.AlarmTypes) > 0 {
		args["alarm_types"] = c.AlarmTypes
	}
	if len(c.EventTypes) > 0 {
		args["event_types"] = c.EventTypes
	}
	if len(c.Statuses) > 0 {
		args["statuses"] = c.Statuses
	}
	if len(c.Severities) > 0 {
		args["severities"] = c.Severities
	}
	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.InterfaceID != "" {
		args["interface_id"] = c.InterfaceID
	}
	if c.ServiceID != "" {
		args["service_id"] = c.ServiceID
	}
	if c.CustomerID != "" {
		args["customer_id"] = c.CustomerID
	}
	if c.MetricName != "" {
		args["metric_name"] = c.MetricName
	}
	if c.CorrelationID != "" {
		args["correlation_id"] = c.CorrelationID
	}
	if len(c.ParentEventIDs) > 0 {
		args["parent_event_ids"] = c.ParentEventIDs
	}
	if !c.LastOccurrenceAfter.IsZero() {
		args["last_occurrence_after"] = c.LastOccurrenceAfter.UTC()
	}
	if !c.EventTimeAfter.IsZero() {
		args["event_time_after"] = c.EventTimeAfter.UTC()
	}
	if !c.EventTimeBefore.IsZero() {
		args["event_time_before"] = c.EventTimeBefore.UTC()
	}
	if !c.SuppressedUntilBefore.IsZero() {
		args["suppressed_until_before"] = c.SuppressedUntilBefore.UTC()
	}
	if c.Enabled != nil {
		args["enabled"] = *c.Enabled
	}
	if c.faultKey != nil {
		args["fk_tenant"] = c.faultKey.Tenant
		args["fk_alarm_type"] = c.faultKey.AlarmType
		args["fk_device_id"] = c.faultKey.DeviceID
		args["fk_interface_id"] = c.faultKey.InterfaceID
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.AlarmID != "" {
		where = append(where, "alarm_id = @alarm_id")
	}
	if c.EventID != "" {
		where = append(where, "event_id = @event_id")
	}
	if c.RuleID != "" {
		where = append(where, "rule_id = @rule_id")
	}

	if len(c.Tenant) > 0 {
		where = append(where, "tenant = @tenant")
	} else if len(c.Tenants) > 0 {
		where = append(where, "tenant = ANY(@tenants)")
	}

	if len(c.AlarmTypes) > 0 {
		where = append(where, "alarm_type = ANY(@alarm_types)")
	}
	if len(c.EventTypes) > 0 {
		where = append(where, "event_type = ANY(@event_types)")
	}
	if len(c.Statuses) > 0 {
		where = append(where, "status = ANY(@statuses)")
	}
	if len(c.Severities) > 0 {
		where = append(where, "severity = ANY(@severities)")
	}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.InterfaceID != "" {
		where = append(where, "interface_id = @interface_id")
	}
	if c.ServiceID != "" {
		where = append(where, "service_id = @service_id")
	}
	if c.CustomerID != "" {
		where = append(where, "customer_id = @customer_id")
	}
	if c.MetricName != "" {
		where = append(where, "metric_name = @metric_name")
	}

	if c.CorrelationID != "" {
		where = append(where, "correlation_id = @correlation_id")
	}
	if len(c.ParentEventIDs) > 0 {
		where = append(where, "parent_event_id = ANY(@parent_event_ids)")
	}

	if !c.LastOccurrenceAfter.IsZero() {
		where = append(where, "last_occurrence >= @last_occurrence_after")
	}
	if !c.EventTimeAfter.IsZero() {
		where = append(where, "event_timestamp >= @event_time_after")
	}
	if !c.EventTimeBefore.IsZero() {
		where = append(where, "event_timestamp < @event_time_before")
	}
	if !c.SuppressedUntilBefore.IsZero() {
		where = append(where, "suppression ->> 'until' IS NOT NULL AND (suppression ->> 'until')::timestamptz <= @suppressed_until_before")
	}

	if c.Enabled != nil {
		where = append(where, "enabled = @enabled")
	}

	if c.faultKey != nil {
		where = append(where,
			"tenant = @fk_tenant",
			"alarm_type = @fk_alarm_type",
			"device_id = @fk_device_id",
			"interface_id = @fk_interface_id",
		)
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithAlarmID(alarmID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlarmID = alarmID
		return c
	}
}

func WithEventID(eventID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EventID = eventID
		return c
	}
}

func WithRuleID(ruleID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.RuleID = ruleID
		return c
	}
}

func WithTenant(tenant string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenant = tenant
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = tenants
		return c
	}
}

func WithAlarmTypes(alarmTypes ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlarmTypes = alarmTypes
		return c
	}
}

func WithEventTypes(eventTypes ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EventTypes = eventTypes
		return c
	}
}

func WithStatuses(statuses ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Statuses = statuses
		return c
	}
}

func WithSeverities(severities ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severities = severities
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithInterfaceID(interfaceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.InterfaceID = interfaceID
		return c
	}
}

func WithServiceID(serviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ServiceID = serviceID
		return c
	}
}

func WithCustomerID(customerID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.CustomerID = customerID
		return c
	}
}

func WithMetricName(metricName string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MetricName = metricName
		return c
	}
}

func WithCorrelationID(correlationID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.CorrelationID = correlationID
		return c
	}
}

func WithParentEventIDs(parentEventIDs []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ParentEventIDs = parentEventIDs
		return c
	}
}

func WithLastOccurrenceAfter(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.LastOccurrenceAfter = t
		return c
	}
}

func WithEventTimeAfter(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EventTimeAfter = t
		return c
	}
}

func WithEventTimeBefore(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EventTimeBefore = t
		return c
	}
}

func WithSuppressedUntilBefore(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SuppressedUntilBefore = t
		return c
	}
}

func WithEnabled(enabled bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Enabled = &enabled
		return c
	}
}

func WithFaultKey(key FaultKey) ConditionFunc {
	return func(c *Condition) *Condition {
		c.faultKey = &key
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

// ParseConditions maps url query parameters to conditions for the list endpoints.
func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		if len(v) == 0 {
			continue
		}

		switch strings.ToLower(k) {
		case "status":
			conditions = append(conditions, WithStatuses(v...))
		case "severity":
			conditions = append(conditions, WithSeverities(v...))
		case "alarmtype":
			conditions = append(conditions, WithAlarmTypes(v...))
		case "eventtype":
			conditions = append(conditions, WithEventTypes(v...))
		case "deviceid":
			conditions = append(conditions, WithDeviceID(v[0]))
		case "interfaceid":
			conditions = append(conditions, WithInterfaceID(v[0]))
		case "serviceid":
			conditions = append(conditions, WithServiceID(v[0]))
		case "customerid":
			conditions = append(conditions, WithCustomerID(v[0]))
		case "correlationid":
			conditions = append(conditions, WithCorrelationID(v[0]))
		case "since":
			t, err := time.Parse(time.RFC3339, v[0])
			if err == nil {
				conditions = append(conditions, WithLastOccurrenceAfter(t))
			}
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
