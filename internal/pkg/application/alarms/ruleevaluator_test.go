package alarms

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func cpuRule() types.AlarmRule {
	return types.AlarmRule{
		ID:                  "rule-1",
		Tenant:              "default",
		Name:                "cpu high",
		MetricName:          "cpu_usage",
		ThresholdValue:      90,
		ThresholdOperator:   types.OperatorGreaterThan,
		AlarmType:           types.AlarmTypeHighCPU,
		Severity:            types.AlarmSeverityMajor,
		TitleTemplate:       "CPU at {value}% on {device_id}",
		DescriptionTemplate: "{metric_name} {operator} {threshold}",
		Enabled:             true,
	}
}

func TestEvaluateMetricRaisesAlarmOnBreach(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryAlarmRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error) {
		return types.Collection[types.AlarmRule]{Data: []types.AlarmRule{cpuRule()}, Count: 1, TotalCount: 1}, nil
	}
	s.QueryAlarmsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
		return types.Collection[types.Alarm]{}, nil
	}
	s.AddAlarmFunc = func(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error) {
		return alarm, true, nil
	}

	svc := New(s, m)

	raised, err := svc.EvaluateMetric(context.Background(), types.MetricSample{
		Tenant:     "default",
		DeviceID:   "R2",
		MetricName: "cpu_usage",
		Value:      95.5,
		Timestamp:  time.Now().UTC(),
	})

	is.NoErr(err)
	is.Equal(1, len(raised))
	is.Equal("CPU at 95.5% on R2", raised[0].Title)
	is.Equal("cpu_usage > 90", raised[0].Description)
	is.Equal([]string{"auto_generated", "rule:rule-1"}, raised[0].Tags)
}

func TestEvaluateMetricIgnoresValuesWithinThreshold(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryAlarmRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error) {
		return types.Collection[types.AlarmRule]{Data: []types.AlarmRule{cpuRule()}, Count: 1, TotalCount: 1}, nil
	}

	svc := New(s, m)

	raised, err := svc.EvaluateMetric(context.Background(), types.MetricSample{
		Tenant:     "default",
		DeviceID:   "R2",
		MetricName: "cpu_usage",
		Value:      42,
	})

	is.NoErr(err)
	is.Equal(0, len(raised))
	is.Equal(0, len(s.AddAlarmCalls()))
}

func TestEvaluateMetricSkipsWrongDeviceType(t *testing.T) {
	is, s, m := testSetup(t)

	rule := cpuRule()
	rule.DeviceType = "core-router"

	s.QueryAlarmRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error) {
		return types.Collection[types.AlarmRule]{Data: []types.AlarmRule{rule}, Count: 1, TotalCount: 1}, nil
	}

	svc := New(s, m)

	raised, err := svc.EvaluateMetric(context.Background(), types.MetricSample{
		Tenant:     "default",
		DeviceID:   "sw-7",
		DeviceType: "access-switch",
		MetricName: "cpu_usage",
		Value:      99,
	})

	is.NoErr(err)
	is.Equal(0, len(raised))
}

func TestCompareOperators(t *testing.T) {
	is := is.New(t)

	for _, tc := range []struct {
		value     float64
		operator  types.ThresholdOperator
		threshold float64
		expect    bool
	}{
		{95, types.OperatorGreaterThan, 90, true},
		{90, types.OperatorGreaterThan, 90, false},
		{90, types.OperatorGreaterEqual, 90, true},
		{10, types.OperatorLessThan, 20, true},
		{20, types.OperatorLessEqual, 20, true},
		{5, types.OperatorEqual, 5, true},
		{5, types.OperatorNotEqual, 5, false},
	} {
		got, err := compare(tc.value, tc.operator, tc.threshold)
		is.NoErr(err)
		is.Equal(tc.expect, got)
	}

	_, err := compare(1, types.ThresholdOperator("~="), 1)
	is.True(err != nil)
}

func TestMetricSampleHandler(t *testing.T) {
	is, s, m := testSetup(t)

	s.QueryAlarmRulesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error) {
		return types.Collection[types.AlarmRule]{Data: []types.AlarmRule{cpuRule()}, Count: 1, TotalCount: 1}, nil
	}
	s.QueryAlarmsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
		return types.Collection[types.Alarm]{}, nil
	}
	s.AddAlarmFunc = func(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error) {
		return alarm, true, nil
	}

	svc := New(s, m)

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(types.MetricSample{
				Tenant:     "default",
				DeviceID:   "R2",
				MetricName: "cpu_usage",
				Value:      95,
				Timestamp:  time.Now().UTC(),
			})
			return b
		},
		TopicNameFunc: func() string {
			return "device.metric"
		},
	}

	handler := NewMetricSampleHandler(m, svc)
	handler(context.Background(), msg, slog.Default())

	is.Equal(1, len(s.AddAlarmCalls()))
	is.Equal(types.AlarmTypeHighCPU, s.AddAlarmCalls()[0].Alarm.AlarmType)
}
