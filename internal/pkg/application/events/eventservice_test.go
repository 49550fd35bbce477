package events

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (*is.I, *EventStorageMock, *messaging.MsgContextMock) {
	is := is.New(t)

	s := &EventStorageMock{
		AddEventFunc: func(ctx context.Context, event types.NetworkEvent) error {
			return nil
		},
		UpdateEventCorrelationFunc: func(ctx context.Context, event types.NetworkEvent) error {
			return nil
		},
		QueryEventRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error) {
			return types.Collection[types.EventRule]{}, nil
		},
	}
	m := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return is, s, m
}

func conditionsOf(conditions []storage.ConditionFunc) *storage.Condition {
	c := &storage.Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

func networkEvent(id, eventType string, severity types.EventSeverity, deviceID string, at time.Time) types.NetworkEvent {
	return types.NetworkEvent{
		ID:             id,
		Tenant:         "default",
		EventType:      eventType,
		Severity:       severity,
		DeviceID:       deviceID,
		Title:          eventType + " on " + deviceID,
		EventTimestamp: at,
		ProcessedAt:    at,
	}
}

func TestProcessJoinsExistingCorrelationGroup(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC()

	earlier := networkEvent("e1", types.EventTypeDeviceStateChange, types.EventSeverityCritical, "SW1", now.Add(-10*time.Minute))
	earlier.CorrelationID = "corr-1"
	earlier.CurrentState = "down"

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		c := conditionsOf(conditions)
		if c.DeviceID == "SW1" {
			return types.Collection[types.NetworkEvent]{Data: []types.NetworkEvent{earlier}, Count: 1, TotalCount: 1}, nil
		}
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	incoming := networkEvent("", types.EventTypeInterfaceStateChange, types.EventSeverityHigh, "SW1", now)
	incoming.CurrentState = "down"

	processed, correlation, _, err := svc.Process(context.Background(), incoming)
	is.NoErr(err)

	is.Equal("corr-1", correlation.CorrelationID) // reuse the group id
	is.Equal("corr-1", processed.CorrelationID)
	is.Equal("e1", correlation.ParentEventID)    // device down causes interface down
	is.Equal("e1", correlation.RootCauseEventID) // earliest critical state change
	is.Equal(1, correlation.RelatedCount)
	is.Equal(1, len(s.UpdateEventCorrelationCalls()))
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("events.eventProcessed", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestProcessWithoutRelatedEventsMintNoGroup(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	processed, correlation, _, err := svc.Process(context.Background(),
		networkEvent("", types.EventTypeDeviceStateChange, types.EventSeverityCritical, "R9", time.Now().UTC()))
	is.NoErr(err)

	is.Equal("", correlation.CorrelationID)
	is.Equal("", processed.CorrelationID)
	is.Equal(1, len(s.AddEventCalls())) // event still persisted
}

func TestProcessAssignsMintedGroupToFirstEvent(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC()

	first := networkEvent("e1", types.EventTypeSystemEvent, types.EventSeverityLow, "SW1", now.Add(-10*time.Minute))

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		c := conditionsOf(conditions)
		if c.DeviceID == "SW1" {
			return types.Collection[types.NetworkEvent]{Data: []types.NetworkEvent{first}, Count: 1, TotalCount: 1}, nil
		}
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	processed, correlation, _, err := svc.Process(context.Background(),
		networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "SW1", now))
	is.NoErr(err)

	is.True(correlation.CorrelationID != "") // a group is minted for the pair
	is.Equal(correlation.CorrelationID, processed.CorrelationID)

	// both members of the fresh group carry the same id
	updates := s.UpdateEventCorrelationCalls()
	is.Equal(2, len(updates))
	is.Equal("e1", updates[0].Event.ID)
	is.Equal(correlation.CorrelationID, updates[0].Event.CorrelationID)
}

func TestCorrelationWindowBoundsRelatedEvents(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC()

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		c := conditionsOf(conditions)
		is.True(!c.EventTimeAfter.IsZero())
		is.True(now.Sub(c.EventTimeAfter) <= 30*time.Minute+time.Second)
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	_, _, _, err := svc.Process(context.Background(),
		networkEvent("", types.EventTypeDeviceStateChange, types.EventSeverityLow, "SW1", now))
	is.NoErr(err)
}

func TestRootCauseSelection(t *testing.T) {
	is := is.New(t)

	t0 := time.Now().UTC().Add(-10 * time.Minute)

	deviceDown := networkEvent("e-dev", types.EventTypeDeviceStateChange, types.EventSeverityCritical, "R1", t0)
	interfaceDown := networkEvent("e-if", types.EventTypeInterfaceStateChange, types.EventSeverityHigh, "R1", t0.Add(time.Minute))
	serviceDown := networkEvent("e-svc", types.EventTypeServiceStateChange, types.EventSeverityMedium, "R1", t0.Add(2*time.Minute))

	is.Equal("e-dev", findRootCause([]types.NetworkEvent{serviceDown, interfaceDown, deviceDown}))
}

func TestStrengthScore(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()

	event := networkEvent("e0", types.EventTypeDeviceStateChange, types.EventSeverityHigh, "SW1", now)
	event.ServiceID = "svc-1"

	related := []types.NetworkEvent{
		networkEvent("e1", types.EventTypeDeviceStateChange, types.EventSeverityHigh, "SW1", now.Add(-time.Minute)),
		networkEvent("e2", types.EventTypeInterfaceStateChange, types.EventSeverityHigh, "SW1", now.Add(-2*time.Minute)),
	}
	related[1].ServiceID = "svc-1"

	almostEqual := func(want, got float64) bool {
		return math.Abs(want-got) < 1e-9
	}

	// 0.3 device + 0.2 service + 0.2 volume
	is.True(almostEqual(0.7, strength(event, related)))

	many := related
	for i := 0; i < 10; i++ {
		many = append(many, networkEvent("x", types.EventTypeSystemEvent, types.EventSeverityLow, "SW1", now.Add(-time.Minute)))
	}
	is.True(almostEqual(0.8, strength(event, many))) // volume contribution capped at 0.3
}

func TestEscalateRuleOverridesSeverity(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{}, nil
	}
	s.QueryEventRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error) {
		return types.Collection[types.EventRule]{Data: []types.EventRule{
			{
				ID:               "er-1",
				Tenant:           "default",
				Name:             "escalate security events",
				EventTypePattern: "^security_",
				Action:           types.EventRuleActionEscalate,
				EscalateTo:       types.EventSeverityCritical,
				Enabled:          true,
			},
		}, Count: 1, TotalCount: 1}, nil
	}

	svc := New(s, m, nil)

	processed, _, results, err := svc.Process(context.Background(),
		networkEvent("", types.EventTypeSecurityEvent, types.EventSeverityLow, "FW1", time.Now().UTC()))
	is.NoErr(err)

	is.Equal(types.EventSeverityCritical, processed.Severity)
	is.Equal(1, len(results))
	is.True(results[0].Applied)
	is.Equal("er-1", results[0].RuleID)
}

func TestBrokenRuleDoesNotBlockOthers(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{}, nil
	}
	s.QueryEventRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error) {
		return types.Collection[types.EventRule]{Data: []types.EventRule{
			{
				ID:               "er-bad",
				Tenant:           "default",
				Name:             "broken pattern",
				EventTypePattern: "[invalid",
				Action:           types.EventRuleActionNotify,
				Enabled:          true,
			},
			{
				ID:         "er-good",
				Tenant:     "default",
				Name:       "notify noc",
				Action:     types.EventRuleActionNotify,
				Enabled:    true,
				Severities: []types.EventSeverity{types.EventSeverityCritical},
			},
		}, Count: 2, TotalCount: 2}, nil
	}

	svc := New(s, m, nil)

	processed, _, results, err := svc.Process(context.Background(),
		networkEvent("", types.EventTypeDeviceStateChange, types.EventSeverityCritical, "R1", time.Now().UTC()))
	is.NoErr(err)

	is.Equal(2, len(results))
	is.True(results[0].Error != "") // the broken rule reports its failure
	is.True(!results[0].Applied)
	is.True(results[1].Applied)
	is.Equal([]string{"notify:notify noc"}, processed.Tags)
	is.Equal(1, len(s.AddEventCalls())) // ingest unaffected
}

func TestGetCorrelatedEventsBuildsHierarchy(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC()

	root := networkEvent("e1", types.EventTypeDeviceStateChange, types.EventSeverityCritical, "R1", now.Add(-5*time.Minute))
	root.CorrelationID = "corr-9"

	child := networkEvent("e2", types.EventTypeInterfaceStateChange, types.EventSeverityHigh, "R1", now.Add(-4*time.Minute))
	child.CorrelationID = "corr-9"
	child.ParentEventID = "e1"

	orphan := networkEvent("e3", types.EventTypeServiceStateChange, types.EventSeverityMedium, "R1", now.Add(-3*time.Minute))
	orphan.CorrelationID = "corr-9"
	orphan.ParentEventID = "gone"

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		c := conditionsOf(conditions)
		if c.CorrelationID == "corr-9" {
			return types.Collection[types.NetworkEvent]{Data: []types.NetworkEvent{root, child, orphan}, Count: 3, TotalCount: 3}, nil
		}
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	group, err := svc.GetCorrelatedEvents(context.Background(), "corr-9", true, []string{"default"})
	is.NoErr(err)

	is.Equal(3, len(group.Events))
	is.Equal([]string{"e1"}, group.Hierarchy.RootEvents)
	is.Equal([]string{"e2"}, group.Hierarchy.Children["e1"])
	is.Equal([]string{"e3"}, group.Hierarchy.Orphaned)
}

func TestGetCorrelatedEventsUnknownGroup(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{}, nil
	}

	svc := New(s, m, nil)

	_, err := svc.GetCorrelatedEvents(context.Background(), "nosuchgroup", false, []string{"default"})
	is.Equal(err, ErrCorrelationNotFound)
}
