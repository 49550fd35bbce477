package incidents

import (
	"context"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/matryer/is"
)

func TestCreateFromCorrelation(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()

	a := &alarms.AlarmServiceMock{
		CreateOrMergeFunc: func(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error) {
			alarm.ID = "incident-alarm-1"
			alarm.Status = types.AlarmStatusActive
			return alarm, true, nil
		},
	}
	e := &events.EventServiceMock{
		GetCorrelatedEventsFunc: func(ctx context.Context, correlationID string, includeChildren bool, tenants []string) (types.EventGroup, error) {
			return types.EventGroup{
				CorrelationID: correlationID,
				Events: []types.NetworkEvent{
					{
						ID:               "e1",
						Tenant:           "default",
						EventType:        types.EventTypeDeviceStateChange,
						Severity:         types.EventSeverityCritical,
						DeviceID:         "R1",
						CorrelationID:    correlationID,
						RootCauseEventID: "e1",
						EventTimestamp:   now,
					},
					{
						ID:             "e2",
						Tenant:         "default",
						EventType:      types.EventTypeInterfaceStateChange,
						Severity:       types.EventSeverityHigh,
						DeviceID:       "R1",
						CorrelationID:  correlationID,
						ParentEventID:  "e1",
						EventTimestamp: now.Add(time.Minute),
					},
				},
			}, nil
		},
	}

	svc := New(a, e)

	ref, err := svc.CreateFromCorrelation(context.Background(), "corr-1", "core outage", "R1 down with cascade", "noc-oncall", []string{"default"})
	is.NoErr(err)

	is.Equal("incident-alarm-1", ref.AlarmID)
	is.Equal("corr-1", ref.CorrelationID)
	is.Equal(2, ref.EventCount)
	is.Equal("noc-oncall", ref.AssignedTo)

	is.Equal(1, len(a.CreateOrMergeCalls()))
	created := a.CreateOrMergeCalls()[0].Alarm
	is.Equal(types.AlarmTypeIncident, created.AlarmType)
	is.Equal(types.AlarmSeverityMajor, created.Severity)
	is.Equal("corr-1", created.CorrelationID)
	is.Equal("e1", created.Context["root_cause_event_id"])
}

func TestCreateFromCorrelationRequiresTitle(t *testing.T) {
	is := is.New(t)

	svc := New(&alarms.AlarmServiceMock{}, &events.EventServiceMock{})

	_, err := svc.CreateFromCorrelation(context.Background(), "corr-1", "", "", "", []string{"default"})
	is.Equal(err, ErrNoTitle)
}

func TestCreateFromCorrelationUnknownGroup(t *testing.T) {
	is := is.New(t)

	e := &events.EventServiceMock{
		GetCorrelatedEventsFunc: func(ctx context.Context, correlationID string, includeChildren bool, tenants []string) (types.EventGroup, error) {
			return types.EventGroup{}, events.ErrCorrelationNotFound
		},
	}

	svc := New(&alarms.AlarmServiceMock{}, e)

	_, err := svc.CreateFromCorrelation(context.Background(), "nosuchgroup", "title", "", "", []string{"default"})
	is.Equal(err, events.ErrCorrelationNotFound)
}
