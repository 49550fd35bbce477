package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newAlarm(tenant, alarmType, deviceID string) types.Alarm {
	now := time.Now().UTC()
	return types.Alarm{
		ID:              uuid.NewString(),
		Tenant:          tenant,
		AlarmType:       alarmType,
		Severity:        types.AlarmSeverityMajor,
		Status:          types.AlarmStatusActive,
		DeviceID:        deviceID,
		Title:           "test alarm",
		FirstOccurrence: now,
		LastOccurrence:  now,
		OccurrenceCount: 1,
	}
}

func TestAddAlarm(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alarm := newAlarm("default", types.AlarmTypeDeviceDown, uuid.NewString())

	stored, inserted, err := s.AddAlarm(ctx, alarm)
	is.NoErr(err)
	is.True(inserted)
	is.Equal(1, stored.OccurrenceCount)
}

func TestAddAlarmMergesOnOpenFaultKey(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()

	first := newAlarm("default", types.AlarmTypeDeviceDown, deviceID)
	_, inserted, err := s.AddAlarm(ctx, first)
	is.NoErr(err)
	is.True(inserted)

	second := newAlarm("default", types.AlarmTypeDeviceDown, deviceID)
	merged, inserted, err := s.AddAlarm(ctx, second)
	is.NoErr(err)
	is.True(!inserted)
	is.Equal(first.ID, merged.ID)
	is.Equal(2, merged.OccurrenceCount)
}

func TestUpdateAlarmRefusesClearedAlarms(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alarm := newAlarm("default", types.AlarmTypeHighCPU, uuid.NewString())
	stored, _, err := s.AddAlarm(ctx, alarm)
	is.NoErr(err)

	now := time.Now().UTC()
	stored.Status = types.AlarmStatusCleared
	stored.ClearedAt = &now
	stored.ClearedBy = "ops1"

	err = s.UpdateAlarm(ctx, stored)
	is.NoErr(err)

	stored.Status = types.AlarmStatusActive
	err = s.UpdateAlarm(ctx, stored)
	is.Equal(err, ErrNoRows)
}

func TestQueryAlarmsWithFaultKey(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()

	_, _, err := s.AddAlarm(ctx, newAlarm("default", types.AlarmTypeInterfaceDown, deviceID))
	is.NoErr(err)

	c, err := s.QueryAlarms(ctx, WithFaultKey(FaultKey{
		Tenant:    "default",
		AlarmType: types.AlarmTypeInterfaceDown,
		DeviceID:  deviceID,
	}), WithStatuses(string(types.AlarmStatusActive), string(types.AlarmStatusAcknowledged)))
	is.NoErr(err)
	is.Equal(uint64(1), c.Count)
}

func TestQueryEventsWithinWindow(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()
	now := time.Now().UTC()

	early := types.NetworkEvent{
		ID:             uuid.NewString(),
		Tenant:         "default",
		EventType:      types.EventTypeDeviceStateChange,
		Severity:       types.EventSeverityCritical,
		DeviceID:       deviceID,
		EventTimestamp: now.Add(-2 * time.Hour),
		ProcessedAt:    now,
	}
	recent := types.NetworkEvent{
		ID:             uuid.NewString(),
		Tenant:         "default",
		EventType:      types.EventTypeInterfaceStateChange,
		Severity:       types.EventSeverityHigh,
		DeviceID:       deviceID,
		EventTimestamp: now.Add(-5 * time.Minute),
		ProcessedAt:    now,
	}

	is.NoErr(s.AddEvent(ctx, early))
	is.NoErr(s.AddEvent(ctx, recent))

	c, err := s.QueryEvents(ctx,
		WithTenant("default"),
		WithDeviceID(deviceID),
		WithEventTimeAfter(now.Add(-30*time.Minute)),
	)
	is.NoErr(err)
	is.Equal(uint64(1), c.Count)
	is.Equal(recent.ID, c.Data[0].ID)
}

func TestSeedAlarmRules(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := SeedAlarmRules(ctx, s, io.NopCloser(strings.NewReader(rulesCsv)), []string{"default"})
	is.NoErr(err)

	c, err := s.QueryAlarmRules(ctx, WithTenant("default"), WithMetricName("cpu_usage"), WithEnabled(true))
	is.NoErr(err)
	is.True(c.Count > 0)
}

const rulesCsv string = `tenant;name;metricName;operator;threshold;window;alarmType;severity;title;description;enabled
default;cpu high;cpu_usage;>;90;300;high_cpu;major;CPU at {value}%;cpu_usage {operator} {threshold};true
other;mem high;memory_usage;>=;95;300;high_memory;major;Memory at {value}%;memory_usage {operator} {threshold};true`
