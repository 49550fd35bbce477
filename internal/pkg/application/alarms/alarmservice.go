package alarms

import (
	"context"
	"fmt"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

const DedupWindow = 1 * time.Hour

var (
	ErrAlarmNotFound     = fmt.Errorf("alarm not found")
	ErrRuleNotFound      = fmt.Errorf("alarm rule not found")
	ErrInvalidTransition = fmt.Errorf("illegal status transition")
	ErrInvalidEscalation = fmt.Errorf("escalation must increase severity")
)

//go:generate moq -rm -out alarmservice_mock.go . AlarmService
type AlarmService interface {
	RegisterTopicMessageHandler(ctx context.Context) error

	CreateOrMerge(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error)
	Acknowledge(ctx context.Context, alarmID, by, notes string, tenants []string) (types.Alarm, error)
	Clear(ctx context.Context, alarmID, by, reason string, tenants []string) (types.Alarm, error)
	Escalate(ctx context.Context, alarmID string, newSeverity types.AlarmSeverity, by, reason string, tenants []string) (types.Alarm, error)
	Suppress(ctx context.Context, alarmID, by string, duration time.Duration, reason string, tenants []string) (types.Alarm, error)
	ReactivateExpired(ctx context.Context) (int, error)

	Query(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error)
	GetByID(ctx context.Context, alarmID string, tenants []string) (types.Alarm, error)

	EvaluateMetric(ctx context.Context, sample types.MetricSample) ([]types.Alarm, error)
	AddRule(ctx context.Context, rule types.AlarmRule) (types.AlarmRule, error)
	QueryRules(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error)
}

//go:generate moq -rm -out alarmstorage_mock.go . AlarmStorage
type AlarmStorage interface {
	QueryAlarms(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error)
	GetAlarm(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alarm, error)
	AddAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error)
	MergeAlarm(ctx context.Context, alarmID, tenant string, observedAt time.Time) (types.Alarm, error)
	UpdateAlarm(ctx context.Context, alarm types.Alarm) error
	AddAlarmRule(ctx context.Context, rule types.AlarmRule) error
	QueryAlarmRules(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error)
	GetAlarmRule(ctx context.Context, conditions ...storage.ConditionFunc) (types.AlarmRule, error)
}

type alarmSvc struct {
	storage   AlarmStorage
	messenger messaging.MsgContext
}

func New(s AlarmStorage, m messaging.MsgContext) AlarmService {
	return &alarmSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc alarmSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("device.metric", NewMetricSampleHandler(svc.messenger, svc))
}

// CreateOrMerge deduplicates against the open alarm holding the same fault
// key. A matching alarm whose last occurrence falls within the recency
// window absorbs the new occurrence instead of creating a new row. The
// returned flag reports whether a new alarm was created. Merges emit no
// lifecycle event.
func (svc alarmSvc) CreateOrMerge(ctx context.Context, alarm types.Alarm) (types.Alarm, bool, error) {
	if alarm.Tenant == "" {
		return types.Alarm{}, false, fmt.Errorf("no tenant is set on alarm")
	}
	if alarm.ID == "" {
		alarm.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if alarm.FirstOccurrence.IsZero() {
		alarm.FirstOccurrence = now
	}
	if alarm.LastOccurrence.IsZero() {
		alarm.LastOccurrence = alarm.FirstOccurrence
	}
	if alarm.OccurrenceCount == 0 {
		alarm.OccurrenceCount = 1
	}
	alarm.Status = types.AlarmStatusActive

	key := storage.FaultKey{
		Tenant:      alarm.Tenant,
		AlarmType:   alarm.AlarmType,
		DeviceID:    alarm.DeviceID,
		InterfaceID: alarm.InterfaceID,
	}

	existing, err := svc.storage.QueryAlarms(ctx,
		storage.WithFaultKey(key),
		storage.WithStatuses(string(types.AlarmStatusActive), string(types.AlarmStatusAcknowledged)),
		storage.WithLastOccurrenceAfter(alarm.LastOccurrence.Add(-DedupWindow)),
		storage.WithLimit(1),
	)
	if err != nil {
		return types.Alarm{}, false, err
	}

	if len(existing.Data) > 0 {
		merged, err := svc.storage.MergeAlarm(ctx, existing.Data[0].ID, alarm.Tenant, alarm.LastOccurrence)
		if err == nil {
			return merged, false, nil
		}
		if err != storage.ErrNoRows {
			return types.Alarm{}, false, err
		}
		// The alarm closed between lookup and merge, fall through to insert.
	}

	stored, inserted, err := svc.storage.AddAlarm(ctx, alarm)
	if err != nil {
		return types.Alarm{}, false, err
	}

	if !inserted {
		return stored, false, nil
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.AlarmCreated{
		Alarm:     stored,
		Tenant:    stored.Tenant,
		Timestamp: stored.FirstOccurrence,
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish alarm created", "alarm_id", stored.ID, "err", err.Error())
	}

	return stored, true, nil
}

func (svc alarmSvc) Acknowledge(ctx context.Context, alarmID, by, notes string, tenants []string) (types.Alarm, error) {
	alarm, err := svc.getForUpdate(ctx, alarmID, tenants)
	if err != nil {
		return types.Alarm{}, err
	}

	if alarm.Status != types.AlarmStatusActive {
		return types.Alarm{}, fmt.Errorf("%w: cannot acknowledge %s alarm", ErrInvalidTransition, alarm.Status)
	}

	now := time.Now().UTC()

	alarm.Status = types.AlarmStatusAcknowledged
	alarm.AcknowledgedAt = &now
	alarm.AcknowledgedBy = by

	if notes != "" {
		if alarm.Context == nil {
			alarm.Context = map[string]any{}
		}
		alarm.Context["acknowledgement_notes"] = notes
	}

	err = svc.storage.UpdateAlarm(ctx, alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	return alarm, svc.messenger.PublishOnTopic(ctx, &types.AlarmAcknowledged{
		AlarmID:   alarm.ID,
		By:        by,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})
}

func (svc alarmSvc) Clear(ctx context.Context, alarmID, by, reason string, tenants []string) (types.Alarm, error) {
	alarm, err := svc.getForUpdate(ctx, alarmID, tenants)
	if err != nil {
		return types.Alarm{}, err
	}

	if alarm.Status == types.AlarmStatusCleared {
		return types.Alarm{}, fmt.Errorf("%w: alarm is already cleared", ErrInvalidTransition)
	}

	now := time.Now().UTC()

	if alarm.Context == nil {
		alarm.Context = map[string]any{}
	}
	alarm.Context["previous_status"] = string(alarm.Status)

	if reason != "" {
		alarm.Context["clear_reason"] = reason
	}

	alarm.Status = types.AlarmStatusCleared
	alarm.ClearedAt = &now
	alarm.ClearedBy = by

	err = svc.storage.UpdateAlarm(ctx, alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	return alarm, svc.messenger.PublishOnTopic(ctx, &types.AlarmCleared{
		AlarmID:   alarm.ID,
		By:        by,
		Reason:    reason,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})
}

// Escalate raises the severity of a non terminal alarm. Severity only moves
// upward, so the new severity must outrank the current one. The status is
// left untouched.
func (svc alarmSvc) Escalate(ctx context.Context, alarmID string, newSeverity types.AlarmSeverity, by, reason string, tenants []string) (types.Alarm, error) {
	alarm, err := svc.getForUpdate(ctx, alarmID, tenants)
	if err != nil {
		return types.Alarm{}, err
	}

	if alarm.Status == types.AlarmStatusCleared {
		return types.Alarm{}, fmt.Errorf("%w: cannot escalate a cleared alarm", ErrInvalidTransition)
	}

	if newSeverity.Rank() < 0 {
		return types.Alarm{}, fmt.Errorf("%w: unknown severity %s", ErrInvalidEscalation, newSeverity)
	}
	if newSeverity.Rank() <= alarm.Severity.Rank() {
		return types.Alarm{}, fmt.Errorf("%w: %s does not outrank %s", ErrInvalidEscalation, newSeverity, alarm.Severity)
	}

	now := time.Now().UTC()

	alarm.Escalations = append(alarm.Escalations, types.Escalation{
		From:   alarm.Severity,
		To:     newSeverity,
		By:     by,
		Reason: reason,
		At:     now,
	})

	from := alarm.Severity
	alarm.Severity = newSeverity

	err = svc.storage.UpdateAlarm(ctx, alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	return alarm, svc.messenger.PublishOnTopic(ctx, &types.AlarmEscalated{
		AlarmID:   alarm.ID,
		From:      from,
		To:        newSeverity,
		By:        by,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})
}

// Suppress is legal from any non terminal status. The previous status is
// recorded so that the expiry sweep can restore it.
func (svc alarmSvc) Suppress(ctx context.Context, alarmID, by string, duration time.Duration, reason string, tenants []string) (types.Alarm, error) {
	alarm, err := svc.getForUpdate(ctx, alarmID, tenants)
	if err != nil {
		return types.Alarm{}, err
	}

	if alarm.Status == types.AlarmStatusCleared {
		return types.Alarm{}, fmt.Errorf("%w: cannot suppress a cleared alarm", ErrInvalidTransition)
	}

	now := time.Now().UTC()

	suppression := &types.Suppression{
		By:             by,
		At:             now,
		Reason:         reason,
		PreviousStatus: alarm.Status,
	}
	if duration > 0 {
		until := now.Add(duration)
		suppression.Until = &until
	}

	alarm.Status = types.AlarmStatusSuppressed
	alarm.Suppression = suppression

	err = svc.storage.UpdateAlarm(ctx, alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	return alarm, svc.messenger.PublishOnTopic(ctx, &types.AlarmSuppressed{
		AlarmID:   alarm.ID,
		By:        by,
		Until:     suppression.Until,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})
}

// ReactivateExpired returns suppressed alarms whose suppression has run out
// to active and reports how many were reactivated. It is driven by the
// watchdog and is the only path out of suppression besides clearing.
func (svc alarmSvc) ReactivateExpired(ctx context.Context) (int, error) {
	log := logging.GetFromContext(ctx)

	expired, err := svc.storage.QueryAlarms(ctx,
		storage.WithStatuses(string(types.AlarmStatusSuppressed)),
		storage.WithSuppressedUntilBefore(time.Now().UTC()),
	)
	if err != nil {
		return 0, err
	}

	reactivated := 0

	for _, alarm := range expired.Data {
		alarm.Status = types.AlarmStatusActive
		alarm.Suppression = nil

		err := svc.storage.UpdateAlarm(ctx, alarm)
		if err != nil {
			log.Error("could not reactivate alarm", "alarm_id", alarm.ID, "err", err.Error())
			continue
		}

		err = svc.messenger.PublishOnTopic(ctx, &types.AlarmReactivated{
			AlarmID:   alarm.ID,
			Tenant:    alarm.Tenant,
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			log.Error("could not publish alarm reactivated", "alarm_id", alarm.ID, "err", err.Error())
		}

		reactivated++
	}

	return reactivated, nil
}

func (svc alarmSvc) Query(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
	conditions = append(conditions, storage.WithTenants(tenants))

	alarms, err := svc.storage.QueryAlarms(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	return alarms, nil
}

func (svc alarmSvc) GetByID(ctx context.Context, alarmID string, tenants []string) (types.Alarm, error) {
	alarm, err := svc.storage.GetAlarm(ctx, storage.WithAlarmID(alarmID), storage.WithTenants(tenants))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.Alarm{}, ErrAlarmNotFound
		}
		return types.Alarm{}, err
	}

	return alarm, nil
}

func (svc alarmSvc) AddRule(ctx context.Context, rule types.AlarmRule) (types.AlarmRule, error) {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if rule.ThresholdOperator != "" && !validOperator(rule.ThresholdOperator) {
		return types.AlarmRule{}, fmt.Errorf("unknown threshold operator %s", rule.ThresholdOperator)
	}

	err := svc.storage.AddAlarmRule(ctx, rule)
	if err != nil {
		return types.AlarmRule{}, err
	}

	return rule, nil
}

func (svc alarmSvc) QueryRules(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.AlarmRule], error) {
	conditions = append(conditions, storage.WithTenants(tenants))

	rules, err := svc.storage.QueryAlarmRules(ctx, conditions...)
	if err != nil {
		return types.Collection[types.AlarmRule]{}, err
	}

	return rules, nil
}

func (svc alarmSvc) getForUpdate(ctx context.Context, alarmID string, tenants []string) (types.Alarm, error) {
	conditions := []storage.ConditionFunc{storage.WithAlarmID(alarmID)}
	if len(tenants) > 0 {
		conditions = append(conditions, storage.WithTenants(tenants))
	}

	alarm, err := svc.storage.GetAlarm(ctx, conditions...)
	if err != nil {
		if err == storage.ErrNoRows {
			return types.Alarm{}, ErrAlarmNotFound
		}
		return types.Alarm{}, err
	}

	return alarm, nil
}
