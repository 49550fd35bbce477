package events

import (
	"context"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/matryer/is"
)

func TestAnalyzePatternsInsufficientEvents(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{Data: []types.NetworkEvent{
			networkEvent("e1", types.EventTypeSystemEvent, types.EventSeverityLow, "R1", time.Now().UTC()),
		}, Count: 1, TotalCount: 1}, nil
	}

	svc := New(s, m, nil)

	report, err := svc.AnalyzePatterns(context.Background(), 24, 10, []string{"default"})
	is.NoErr(err)
	is.True(report.Insufficient)
	is.Equal(1, report.TotalEvents)
	is.Equal(0, len(report.Patterns))
}

func TestAnalyzePatternsRepeatedDeviceEvents(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC()
	data := make([]types.NetworkEvent, 0)

	// 12 events on SW1, spread over the window
	for i := 0; i < 12; i++ {
		data = append(data, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "SW1", now.Add(-time.Duration(i)*time.Hour)))
	}
	data = append(data, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "R7", now))

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{Data: data, Count: uint64(len(data)), TotalCount: uint64(len(data))}, nil
	}

	svc := New(s, m, nil)

	report, err := svc.AnalyzePatterns(context.Background(), 24, 5, []string{"default"})
	is.NoErr(err)
	is.True(!report.Insufficient)
	is.Equal(1, len(report.Patterns))
	is.Equal("repeated_device_events", report.Patterns[0].PatternType)
	is.Equal("SW1", report.Patterns[0].DeviceID)
	is.Equal(12, report.Patterns[0].Count)
	is.Equal("medium", report.Patterns[0].Severity)
}

func TestAnalyzePatternsHighDeviceCountEscalatesSeverity(t *testing.T) {
	is := is.New(t)

	events := make([]types.NetworkEvent, 0)
	now := time.Now().UTC()
	for i := 0; i < 21; i++ {
		events = append(events, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "SW1", now.Add(-time.Duration(i)*time.Minute)))
	}

	patterns := devicePatterns(events)
	is.Equal(1, len(patterns))
	is.Equal("high", patterns[0].Severity)
}

func TestAnalyzePatternsEventSpike(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC().Truncate(time.Hour)
	data := make([]types.NetworkEvent, 0)

	// one event per hour for five hours, then a burst of twenty
	for i := 1; i <= 5; i++ {
		data = append(data, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "R1", now.Add(-time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 20; i++ {
		data = append(data, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "R2", now.Add(time.Duration(i)*time.Minute)))
	}

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{Data: data, Count: uint64(len(data)), TotalCount: uint64(len(data))}, nil
	}

	svc := New(s, m, nil)

	report, err := svc.AnalyzePatterns(context.Background(), 6, 5, []string{"default"})
	is.NoErr(err)
	is.Equal(1, len(report.Anomalies))
	is.Equal("event_spike", report.Anomalies[0].AnomalyType)
	is.Equal(now, report.Anomalies[0].Hour)
	is.Equal(20, report.Anomalies[0].Count)
}

func TestAnalyzePatternsFlagsBurstInQuietWindow(t *testing.T) {
	is, s, m := testSetup(t)

	now := time.Now().UTC().Truncate(time.Hour)
	data := make([]types.NetworkEvent, 0)

	// a single-hour burst with nothing else in the window
	for i := 0; i < 8; i++ {
		data = append(data, networkEvent("", types.EventTypeSystemEvent, types.EventSeverityLow, "R2", now.Add(time.Duration(i)*time.Minute)))
	}

	s.QueryEventsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
		return types.Collection[types.NetworkEvent]{Data: data, Count: uint64(len(data)), TotalCount: uint64(len(data))}, nil
	}

	svc := New(s, m, nil)

	report, err := svc.AnalyzePatterns(context.Background(), 24, 5, []string{"default"})
	is.NoErr(err)
	is.Equal(1, len(report.Anomalies))
	is.Equal("event_spike", report.Anomalies[0].AnomalyType)
	is.Equal(now, report.Anomalies[0].Hour)
	is.Equal(8, report.Anomalies[0].Count)
}

func TestAnalyzePatternsCorrelationSummary(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()

	e1 := networkEvent("e1", types.EventTypeSystemEvent, types.EventSeverityLow, "R1", now)
	e1.CorrelationID = "corr-1"
	e2 := networkEvent("e2", types.EventTypeSystemEvent, types.EventSeverityLow, "R1", now)
	e2.CorrelationID = "corr-1"
	e3 := networkEvent("e3", types.EventTypeSystemEvent, types.EventSeverityLow, "R2", now)
	e3.CorrelationID = "corr-2"
	e4 := networkEvent("e4", types.EventTypeSystemEvent, types.EventSeverityLow, "R3", now)

	summary := correlationSummary([]types.NetworkEvent{e1, e2, e3, e4})
	is.Equal(3, summary.CorrelatedEvents)
	is.Equal(2, summary.GroupCount)
	is.Equal(2, summary.Groups["corr-1"])
	is.Equal(1, summary.Groups["corr-2"])
}
