package types

import (
	"time"
)

type AlarmStatus string

const (
	AlarmStatusActive       AlarmStatus = "active"
	AlarmStatusAcknowledged AlarmStatus = "acknowledged"
	AlarmStatusCleared      AlarmStatus = "cleared"
	AlarmStatusSuppressed   AlarmStatus = "suppressed"
)

type AlarmSeverity string

const (
	AlarmSeverityInfo     AlarmSeverity = "info"
	AlarmSeverityWarning  AlarmSeverity = "warning"
	AlarmSeverityMinor    AlarmSeverity = "minor"
	AlarmSeverityMajor    AlarmSeverity = "major"
	AlarmSeverityCritical AlarmSeverity = "critical"
)

// AlarmSeverities is ordered from least to most severe. Escalation checks
// and list ordering both derive their ranking from this slice.
var AlarmSeverities = []AlarmSeverity{
	AlarmSeverityInfo,
	AlarmSeverityWarning,
	AlarmSeverityMinor,
	AlarmSeverityMajor,
	AlarmSeverityCritical,
}

func (s AlarmSeverity) Rank() int {
	for i, severity := range AlarmSeverities {
		if severity == s {
			return i
		}
	}
	return -1
}

const (
	AlarmTypeDeviceDown        string = "device_down"
	AlarmTypeInterfaceDown     string = "interface_down"
	AlarmTypeHighCPU           string = "high_cpu"
	AlarmTypeHighMemory        string = "high_memory"
	AlarmTypeHighBandwidth     string = "high_bandwidth"
	AlarmTypeConfigDrift       string = "config_drift"
	AlarmTypeSecurityViolation string = "security_violation"
	AlarmTypeSLAViolation      string = "sla_violation"
	AlarmTypeConnectivityLoss  string = "connectivity_loss"
	AlarmTypePowerFailure      string = "power_failure"
	AlarmTypeTemperature       string = "temperature_alarm"
	AlarmTypeIncident          string = "incident"
	AlarmTypeCustom            string = "custom"
)

type Suppression struct {
	By             string      `json:"by"`
	At             time.Time   `json:"at"`
	Until          *time.Time  `json:"until,omitempty"`
	Reason         string      `json:"reason,omitempty"`
	PreviousStatus AlarmStatus `json:"previousStatus"`
}

type Escalation struct {
	From   AlarmSeverity `json:"from"`
	To     AlarmSeverity `json:"to"`
	By     string        `json:"by"`
	Reason string        `json:"reason,omitempty"`
	At     time.Time     `json:"at"`
}

type Alarm struct {
	ID     string `json:"alarmID"`
	Tenant string `json:"tenant"`

	AlarmType string        `json:"alarmType"`
	Severity  AlarmSeverity `json:"severity"`
	Status    AlarmStatus   `json:"status"`

	DeviceID    string `json:"deviceID,omitempty"`
	InterfaceID string `json:"interfaceID,omitempty"`
	ServiceID   string `json:"serviceID,omitempty"`
	CustomerID  string `json:"customerID,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`

	FirstOccurrence time.Time `json:"firstOccurrence"`
	LastOccurrence  time.Time `json:"lastOccurrence"`
	OccurrenceCount int       `json:"occurrenceCount"`

	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	AcknowledgedBy string     `json:"acknowledgedBy,omitempty"`
	ClearedAt      *time.Time `json:"clearedAt,omitempty"`
	ClearedBy      string     `json:"clearedBy,omitempty"`

	Suppression *Suppression `json:"suppression,omitempty"`
	Escalations []Escalation `json:"escalations,omitempty"`

	CorrelationID string `json:"correlationID,omitempty"`
	ParentAlarmID string `json:"parentAlarmID,omitempty"`

	Context map[string]any `json:"context,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
}

func (a Alarm) IsOpen() bool {
	return a.Status == AlarmStatusActive || a.Status == AlarmStatusAcknowledged
}

type ThresholdOperator string

const (
	OperatorGreaterThan  ThresholdOperator = ">"
	OperatorGreaterEqual ThresholdOperator = ">="
	OperatorLessThan     ThresholdOperator = "<"
	OperatorLessEqual    ThresholdOperator = "<="
	OperatorEqual        ThresholdOperator = "=="
	OperatorNotEqual     ThresholdOperator = "!="
)

type AlarmRule struct {
	ID     string `json:"ruleID"`
	Tenant string `json:"tenant"`
	Name   string `json:"name"`

	MetricName        string            `json:"metricName"`
	ThresholdValue    float64           `json:"thresholdValue"`
	ThresholdOperator ThresholdOperator `json:"thresholdOperator"`
	EvaluationWindow  int               `json:"evaluationWindow,omitempty"`

	DeviceType string   `json:"deviceType,omitempty"`
	DeviceTags []string `json:"deviceTags,omitempty"`

	AlarmType           string        `json:"alarmType"`
	Severity            AlarmSeverity `json:"severity"`
	TitleTemplate       string        `json:"titleTemplate"`
	DescriptionTemplate string        `json:"descriptionTemplate,omitempty"`

	Enabled bool `json:"enabled"`
}

type MetricSample struct {
	Tenant     string    `json:"tenant"`
	DeviceID   string    `json:"deviceID"`
	DeviceType string    `json:"deviceType,omitempty"`
	DeviceTags []string  `json:"deviceTags,omitempty"`
	MetricName string    `json:"metricName"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

type EventSeverity string

const (
	EventSeverityCritical EventSeverity = "critical"
	EventSeverityHigh     EventSeverity = "high"
	EventSeverityMedium   EventSeverity = "medium"
	EventSeverityLow      EventSeverity = "low"
	EventSeverityInfo     EventSeverity = "info"
)

const (
	EventTypeDeviceStateChange    string = "device_state_change"
	EventTypeInterfaceStateChange string = "interface_state_change"
	EventTypeConfigurationChange  string = "configuration_change"
	EventTypeMetricBreach         string = "metric_threshold_breach"
	EventTypeServiceStateChange   string = "service_state_change"
	EventTypeCustomerEvent        string = "customer_event"
	EventTypeSystemEvent          string = "system_event"
	EventTypeSecurityEvent        string = "security_event"
	EventTypeMaintenanceEvent     string = "maintenance_event"
	EventTypeCustomEvent          string = "custom_event"
)

type NetworkEvent struct {
	ID     string `json:"eventID"`
	Tenant string `json:"tenant"`

	EventType string        `json:"eventType"`
	Severity  EventSeverity `json:"severity"`
	Category  string        `json:"category,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	DeviceID    string `json:"deviceID,omitempty"`
	InterfaceID string `json:"interfaceID,omitempty"`
	ServiceID   string `json:"serviceID,omitempty"`
	CustomerID  string `json:"customerID,omitempty"`

	PreviousState string `json:"previousState,omitempty"`
	CurrentState  string `json:"currentState,omitempty"`

	CorrelationID    string `json:"correlationID,omitempty"`
	ParentEventID    string `json:"parentEventID,omitempty"`
	RootCauseEventID string `json:"rootCauseEventID,omitempty"`

	RawData map[string]any `json:"rawData,omitempty"`
	Tags    []string       `json:"tags,omitempty"`

	EventTimestamp time.Time `json:"eventTimestamp"`
	ProcessedAt    time.Time `json:"processedAt"`
}

type EventRuleAction string

const (
	EventRuleActionSuppress  EventRuleAction = "suppress"
	EventRuleActionEscalate  EventRuleAction = "escalate"
	EventRuleActionCorrelate EventRuleAction = "correlate"
	EventRuleActionNotify    EventRuleAction = "notify"
)

type EventRule struct {
	ID     string `json:"ruleID"`
	Tenant string `json:"tenant"`
	Name   string `json:"name"`

	EventTypePattern string          `json:"eventTypePattern"`
	Severities       []EventSeverity `json:"severities,omitempty"`
	DeviceType       string          `json:"deviceType,omitempty"`

	Action     EventRuleAction `json:"action"`
	EscalateTo EventSeverity   `json:"escalateTo,omitempty"`

	CorrelationWindow int      `json:"correlationWindow,omitempty"`
	KeyFields         []string `json:"keyFields,omitempty"`

	Enabled bool `json:"enabled"`
}

type CorrelationResult struct {
	CorrelationID    string  `json:"correlationID"`
	ParentEventID    string  `json:"parentEventID,omitempty"`
	RootCauseEventID string  `json:"rootCauseEventID,omitempty"`
	Strength         float64 `json:"strength"`
	RelatedCount     int     `json:"relatedCount"`
}

type RuleActionResult struct {
	RuleID   string          `json:"ruleID"`
	RuleName string          `json:"ruleName"`
	Action   EventRuleAction `json:"action"`
	Applied  bool            `json:"applied"`
	Error    string          `json:"error,omitempty"`
}

type Pattern struct {
	PatternType string `json:"patternType"`
	DeviceID    string `json:"deviceID,omitempty"`
	EventType   string `json:"eventType,omitempty"`
	Count       int    `json:"count"`
	Severity    string `json:"severity"`
}

type Anomaly struct {
	AnomalyType string    `json:"anomalyType"`
	Hour        time.Time `json:"hour"`
	Count       int       `json:"count"`
	Average     float64   `json:"average"`
}

type CorrelationSummary struct {
	CorrelatedEvents int            `json:"correlatedEvents"`
	GroupCount       int            `json:"groupCount"`
	Groups           map[string]int `json:"groups,omitempty"`
}

type PatternReport struct {
	WindowHours  int                `json:"windowHours"`
	TotalEvents  int                `json:"totalEvents"`
	Insufficient bool               `json:"insufficientEvents,omitempty"`
	Patterns     []Pattern          `json:"patterns"`
	Anomalies    []Anomaly          `json:"anomalies"`
	Correlations CorrelationSummary `json:"correlations"`
}

type EventHierarchy struct {
	RootEvents []string            `json:"rootEvents"`
	Children   map[string][]string `json:"children"`
	Orphaned   []string            `json:"orphaned,omitempty"`
}

type EventGroup struct {
	CorrelationID string          `json:"correlationID"`
	Events        []NetworkEvent  `json:"events"`
	Hierarchy     *EventHierarchy `json:"hierarchy,omitempty"`
}

type IncidentRef struct {
	AlarmID       string `json:"alarmID"`
	CorrelationID string `json:"correlationID"`
	EventCount    int    `json:"eventCount"`
	AssignedTo    string `json:"assignedTo,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
