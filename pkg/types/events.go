package types

import (
	"encoding/json"
	"time"
)

type AlarmCreated struct {
	Alarm     Alarm     `json:"alarm"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmCreated) ContentType() string {
	return "application/json"
}
func (a *AlarmCreated) TopicName() string {
	return "alarms.alarmCreated"
}
func (a *AlarmCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmAcknowledged struct {
	AlarmID   string    `json:"alarmID"`
	By        string    `json:"by"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmAcknowledged) ContentType() string {
	return "application/json"
}
func (a *AlarmAcknowledged) TopicName() string {
	return "alarms.alarmAcknowledged"
}
func (a *AlarmAcknowledged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmCleared struct {
	AlarmID   string    `json:"alarmID"`
	By        string    `json:"by"`
	Reason    string    `json:"reason,omitempty"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmCleared) ContentType() string {
	return "application/json"
}
func (a *AlarmCleared) TopicName() string {
	return "alarms.alarmCleared"
}
func (a *AlarmCleared) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmEscalated struct {
	AlarmID   string        `json:"alarmID"`
	From      AlarmSeverity `json:"from"`
	To        AlarmSeverity `json:"to"`
	By        string        `json:"by"`
	Tenant    string        `json:"tenant"`
	Timestamp time.Time     `json:"timestamp"`
}

func (a *AlarmEscalated) ContentType() string {
	return "application/json"
}
func (a *AlarmEscalated) TopicName() string {
	return "alarms.alarmEscalated"
}
func (a *AlarmEscalated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmSuppressed struct {
	AlarmID   string     `json:"alarmID"`
	By        string     `json:"by"`
	Until     *time.Time `json:"until,omitempty"`
	Tenant    string     `json:"tenant"`
	Timestamp time.Time  `json:"timestamp"`
}

func (a *AlarmSuppressed) ContentType() string {
	return "application/json"
}
func (a *AlarmSuppressed) TopicName() string {
	return "alarms.alarmSuppressed"
}
func (a *AlarmSuppressed) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmReactivated struct {
	AlarmID   string    `json:"alarmID"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmReactivated) ContentType() string {
	return "application/json"
}
func (a *AlarmReactivated) TopicName() string {
	return "alarms.alarmReactivated"
}
func (a *AlarmReactivated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type EventProcessed struct {
	Event       NetworkEvent      `json:"event"`
	Correlation CorrelationResult `json:"correlation"`
	Tenant      string            `json:"tenant"`
	Timestamp   time.Time         `json:"timestamp"`
}

func (e *EventProcessed) ContentType() string {
	return "application/json"
}
func (e *EventProcessed) TopicName() string {
	return "events.eventProcessed"
}
func (e *EventProcessed) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
