package alarms

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
)

// EvaluateMetric matches the sample against all enabled threshold rules for
// the tenant and metric, and feeds each breach through CreateOrMerge.
// Evaluation failures are logged and skipped so that one bad rule cannot
// block the others.
func (svc alarmSvc) EvaluateMetric(ctx context.Context, sample types.MetricSample) ([]types.Alarm, error) {
	log := logging.GetFromContext(ctx)

	rules, err := svc.storage.QueryAlarmRules(ctx,
		storage.WithTenant(sample.Tenant),
		storage.WithMetricName(sample.MetricName),
		storage.WithEnabled(true),
	)
	if err != nil {
		return nil, err
	}

	raised := make([]types.Alarm, 0)

	for _, rule := range rules.Data {
		if !ruleAppliesTo(rule, sample) {
			continue
		}

		breached, err := compare(sample.Value, rule.ThresholdOperator, rule.ThresholdValue)
		if err != nil {
			log.Error("could not evaluate alarm rule", "rule_id", rule.ID, "err", err.Error())
			continue
		}
		if !breached {
			continue
		}

		observedAt := sample.Timestamp
		if observedAt.IsZero() {
			observedAt = time.Now().UTC()
		}

		alarm, _, err := svc.CreateOrMerge(ctx, types.Alarm{
			Tenant:          sample.Tenant,
			AlarmType:       rule.AlarmType,
			Severity:        rule.Severity,
			DeviceID:        sample.DeviceID,
			Title:           renderTemplate(rule.TitleTemplate, rule, sample),
			Description:     renderTemplate(rule.DescriptionTemplate, rule, sample),
			Source:          "threshold-rule",
			FirstOccurrence: observedAt,
			LastOccurrence:  observedAt,
			Context: map[string]any{
				"rule_id":     rule.ID,
				"metric_name": sample.MetricName,
				"value":       sample.Value,
				"threshold":   rule.ThresholdValue,
			},
			Tags: []string{"auto_generated", "rule:" + rule.ID},
		})
		if err != nil {
			log.Error("could not raise alarm from rule", "rule_id", rule.ID, "err", err.Error())
			continue
		}

		raised = append(raised, alarm)
	}

	return raised, nil
}

func ruleAppliesTo(rule types.AlarmRule, sample types.MetricSample) bool {
	if rule.DeviceType != "" && rule.DeviceType != sample.DeviceType {
		return false
	}
	if len(rule.DeviceTags) > 0 && !lo.Some(sample.DeviceTags, rule.DeviceTags) {
		return false
	}
	return true
}

func compare(value float64, operator types.ThresholdOperator, threshold float64) (bool, error) {
	switch operator {
	case types.OperatorGreaterThan:
		return value > threshold, nil
	case types.OperatorGreaterEqual:
		return value >= threshold, nil
	case types.OperatorLessThan:
		return value < threshold, nil
	case types.OperatorLessEqual:
		return value <= threshold, nil
	case types.OperatorEqual:
		return value == threshold, nil
	case types.OperatorNotEqual:
		return value != threshold, nil
	}
	return false, fmt.Errorf("unknown threshold operator %s", operator)
}

func validOperator(operator types.ThresholdOperator) bool {
	_, err := compare(0, operator, 0)
	return err == nil
}

func renderTemplate(template string, rule types.AlarmRule, sample types.MetricSample) string {
	r := strings.NewReplacer(
		"{metric_name}", sample.MetricName,
		"{device_id}", sample.DeviceID,
		"{value}", strconv.FormatFloat(sample.Value, 'f', -1, 64),
		"{threshold}", strconv.FormatFloat(rule.ThresholdValue, 'f', -1, 64),
		"{operator}", string(rule.ThresholdOperator),
	)
	return r.Replace(template)
}
