package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// SeedAlarmRules loads threshold rules from a csv file on the form
//
//	tenant;name;metricName;operator;threshold;window;alarmType;severity;title;description;enabled
//	default;cpu high;cpu_usage;>;90;300;high_cpu;major;CPU {value}% on {metric_name};threshold {operator} {threshold};true
//
// Rows for tenants outside allowedTenants are skipped.
func SeedAlarmRules(ctx context.Context, s *Storage, rules io.ReadCloser, allowedTenants []string) error {
	defer rules.Close()

	log := logging.GetFromContext(ctx)

	r := csv.NewReader(rules)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("could not read alarm rules csv: %w", err)
	}

	strTof64 := func(s string) float64 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0
		}
		return f
	}

	strToInt := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}

	seeded := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 11 {
			log.Warn("skipping malformed alarm rule row", "row", i)
			continue
		}

		tenant := strings.TrimSpace(row[0])
		if !slices.Contains(allowedTenants, tenant) {
			log.Warn("tenant not allowed", "tenant", tenant)
			continue
		}

		rule := types.AlarmRule{
			ID:                  uuid.NewString(),
			Tenant:              tenant,
			Name:                strings.TrimSpace(row[1]),
			MetricName:          strings.TrimSpace(row[2]),
			ThresholdOperator:   types.ThresholdOperator(strings.TrimSpace(row[3])),
			ThresholdValue:      strTof64(row[4]),
			EvaluationWindow:    strToInt(row[5]),
			AlarmType:           strings.TrimSpace(row[6]),
			Severity:            types.AlarmSeverity(strings.TrimSpace(row[7])),
			TitleTemplate:       row[8],
			DescriptionTemplate: row[9],
			Enabled:             strings.EqualFold(strings.TrimSpace(row[10]), "true"),
		}

		existing, err := s.QueryAlarmRules(ctx, WithTenant(tenant), WithMetricName(rule.MetricName))
		if err != nil {
			return err
		}

		idx := slices.IndexFunc(existing.Data, func(r types.AlarmRule) bool {
			return r.Name == rule.Name
		})
		if idx >= 0 {
			rule.ID = existing.Data[idx].ID
		}

		err = s.AddAlarmRule(ctx, rule)
		if err != nil {
			return err
		}

		seeded++
	}

	log.Debug("alarm rules seeded", "count", seeded)

	return nil
}
