package events

import (
	"context"
	"regexp"
	"slices"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
)

// applyRules runs every enabled event rule for the tenant against the event
// and executes the matching actions. Each rule produces its own result so
// that a failing rule is reported without blocking the others.
func (svc eventSvc) applyRules(ctx context.Context, event *types.NetworkEvent) []types.RuleActionResult {
	log := logging.GetFromContext(ctx)

	rules, err := svc.storage.QueryEventRules(ctx,
		storage.WithTenant(event.Tenant),
		storage.WithEnabled(true),
	)
	if err != nil {
		log.Error("could not load event rules", "err", err.Error())
		return nil
	}

	results := make([]types.RuleActionResult, 0, len(rules.Data))

	for _, rule := range rules.Data {
		result := types.RuleActionResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Action:   rule.Action,
		}

		matched, err := ruleMatches(rule, *event)
		if err != nil {
			result.Error = err.Error()
			log.Error("event rule match failed", "rule_id", rule.ID, "err", err.Error())
			results = append(results, result)
			continue
		}
		if !matched {
			continue
		}

		err = applyAction(rule, event)
		if err != nil {
			result.Error = err.Error()
			log.Error("event rule action failed", "rule_id", rule.ID, "err", err.Error())
		} else {
			result.Applied = true
		}

		results = append(results, result)
	}

	return results
}

func ruleMatches(rule types.EventRule, event types.NetworkEvent) (bool, error) {
	if rule.EventTypePattern != "" {
		matched, err := regexp.MatchString(rule.EventTypePattern, event.EventType)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}

	if len(rule.Severities) > 0 && !slices.Contains(rule.Severities, event.Severity) {
		return false, nil
	}

	if rule.DeviceType != "" {
		deviceType, _ := event.RawData["device_type"].(string)
		if deviceType != rule.DeviceType {
			return false, nil
		}
	}

	return true, nil
}

func applyAction(rule types.EventRule, event *types.NetworkEvent) error {
	switch rule.Action {
	case types.EventRuleActionSuppress:
		// Marks intent only, no cascading suppression of correlated events.
		event.Tags = lo.Union(event.Tags, []string{"suppressed_by_rule"})
	case types.EventRuleActionEscalate:
		if rule.EscalateTo != "" {
			event.Severity = rule.EscalateTo
		}
	case types.EventRuleActionCorrelate:
		// Group membership is already decided by the correlation engine.
	case types.EventRuleActionNotify:
		event.Tags = lo.Union(event.Tags, []string{"notify:" + rule.Name})
	}

	return nil
}
