package events

import (
	"context"
	"sort"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
)

const (
	repeatedDeviceThreshold     = 10
	repeatedDeviceHighThreshold = 20
	frequentEventTypeThreshold  = 15
	spikeFactor                 = 3.0
)

// AnalyzePatterns is a read only batch job over the events in the window. It
// reports devices and event types with repeated activity, hourly volume
// spikes and a summary of the correlation groups.
func (svc eventSvc) AnalyzePatterns(ctx context.Context, windowHours, minEventCount int, tenants []string) (types.PatternReport, error) {
	if windowHours <= 0 {
		windowHours = 24
	}

	windowStart := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour)

	events, err := svc.storage.QueryEvents(ctx,
		storage.WithTenants(tenants),
		storage.WithEventTimeAfter(windowStart),
		storage.WithLimit(10000),
	)
	if err != nil {
		return types.PatternReport{}, err
	}

	report := types.PatternReport{
		WindowHours: windowHours,
		TotalEvents: len(events.Data),
		Patterns:    make([]types.Pattern, 0),
		Anomalies:   make([]types.Anomaly, 0),
	}

	if len(events.Data) < minEventCount {
		report.Insufficient = true
		return report, nil
	}

	report.Patterns = append(report.Patterns, devicePatterns(events.Data)...)
	report.Patterns = append(report.Patterns, eventTypePatterns(events.Data)...)
	report.Anomalies = hourlySpikes(events.Data, windowHours)
	report.Correlations = correlationSummary(events.Data)

	return report, nil
}

func devicePatterns(events []types.NetworkEvent) []types.Pattern {
	perDevice := map[string]int{}
	for _, e := range events {
		if e.DeviceID != "" {
			perDevice[e.DeviceID]++
		}
	}

	patterns := make([]types.Pattern, 0)

	for _, deviceID := range sortedKeys(perDevice) {
		count := perDevice[deviceID]
		if count < repeatedDeviceThreshold {
			continue
		}

		severity := "medium"
		if count >= repeatedDeviceHighThreshold {
			severity = "high"
		}

		patterns = append(patterns, types.Pattern{
			PatternType: "repeated_device_events",
			DeviceID:    deviceID,
			Count:       count,
			Severity:    severity,
		})
	}

	return patterns
}

func eventTypePatterns(events []types.NetworkEvent) []types.Pattern {
	perType := map[string]int{}
	for _, e := range events {
		perType[e.EventType]++
	}

	patterns := make([]types.Pattern, 0)

	for _, eventType := range sortedKeys(perType) {
		count := perType[eventType]
		if count < frequentEventTypeThreshold {
			continue
		}

		patterns = append(patterns, types.Pattern{
			PatternType: "high_frequency_event_type",
			EventType:   eventType,
			Count:       count,
			Severity:    "medium",
		})
	}

	return patterns
}

// hourlySpikes buckets the events per hour and flags hours whose volume
// exceeds three times the average hourly volume over the whole window,
// quiet hours included.
func hourlySpikes(events []types.NetworkEvent, windowHours int) []types.Anomaly {
	if len(events) == 0 {
		return []types.Anomaly{}
	}

	perHour := map[time.Time]int{}
	for _, e := range events {
		perHour[e.EventTimestamp.UTC().Truncate(time.Hour)]++
	}

	average := float64(len(events)) / float64(windowHours)

	hours := make([]time.Time, 0, len(perHour))
	for hour := range perHour {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })

	anomalies := make([]types.Anomaly, 0)

	for _, hour := range hours {
		count := perHour[hour]
		if float64(count) > spikeFactor*average {
			anomalies = append(anomalies, types.Anomaly{
				AnomalyType: "event_spike",
				Hour:        hour,
				Count:       count,
				Average:     average,
			})
		}
	}

	return anomalies
}

func correlationSummary(events []types.NetworkEvent) types.CorrelationSummary {
	groups := map[string]int{}
	correlated := 0

	for _, e := range events {
		if e.CorrelationID != "" {
			correlated++
			groups[e.CorrelationID]++
		}
	}

	return types.CorrelationSummary{
		CorrelatedEvents: correlated,
		GroupCount:       len(groups),
		Groups:           groups,
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
