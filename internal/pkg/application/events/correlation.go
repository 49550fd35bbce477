package events

import (
	"context"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// correlate finds the events related to the given one inside the correlation
// window, assigns or reuses a correlation id, determines a causal parent and
// infers a root cause. The correlation fields are written onto the event in
// place and the caller persists them; related events that lacked a group are
// persisted here directly.
func (svc eventSvc) correlate(ctx context.Context, event *types.NetworkEvent) (types.CorrelationResult, error) {
	related, err := svc.findRelated(ctx, *event)
	if err != nil {
		return types.CorrelationResult{}, err
	}

	if len(related) == 0 {
		return types.CorrelationResult{}, nil
	}

	correlationID := ""
	for _, r := range related {
		if r.CorrelationID != "" {
			correlationID = r.CorrelationID
			break
		}
	}
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	// Related events that predate any group carry no correlation id yet.
	// Assign them the group id as well, so the group is complete from its
	// first member on.
	log := logging.GetFromContext(ctx)

	for _, r := range related {
		if r.CorrelationID != "" {
			continue
		}

		r.CorrelationID = correlationID

		err = svc.storage.UpdateEventCorrelation(ctx, r)
		if err != nil {
			log.Error("could not assign correlation group to related event", "event_id", r.ID, "err", err.Error())
		}
	}

	result := types.CorrelationResult{
		CorrelationID:    correlationID,
		ParentEventID:    svc.findCausalParent(*event, related),
		RootCauseEventID: findRootCause(related),
		Strength:         strength(*event, related),
		RelatedCount:     len(related),
	}

	event.CorrelationID = result.CorrelationID
	event.ParentEventID = result.ParentEventID
	event.RootCauseEventID = result.RootCauseEventID

	return result, nil
}

// findRelated unions events sharing the device, events sharing the service
// and the most recent events of the same type, all within the window
// preceding the event.
func (svc eventSvc) findRelated(ctx context.Context, event types.NetworkEvent) ([]types.NetworkEvent, error) {
	windowStart := event.EventTimestamp.Add(-svc.config.CorrelationWindow())

	related := make([]types.NetworkEvent, 0)

	if event.DeviceID != "" {
		byDevice, err := svc.storage.QueryEvents(ctx,
			storage.WithTenant(event.Tenant),
			storage.WithDeviceID(event.DeviceID),
			storage.WithEventTimeAfter(windowStart),
			storage.WithEventTimeBefore(event.EventTimestamp),
			storage.WithLimit(500),
		)
		if err != nil {
			return nil, err
		}
		related = append(related, byDevice.Data...)
	}

	if event.ServiceID != "" {
		byService, err := svc.storage.QueryEvents(ctx,
			storage.WithTenant(event.Tenant),
			storage.WithServiceID(event.ServiceID),
			storage.WithEventTimeAfter(windowStart),
			storage.WithEventTimeBefore(event.EventTimestamp),
			storage.WithLimit(500),
		)
		if err != nil {
			return nil, err
		}
		related = append(related, byService.Data...)
	}

	byType, err := svc.storage.QueryEvents(ctx,
		storage.WithTenant(event.Tenant),
		storage.WithEventTypes(event.EventType),
		storage.WithEventTimeAfter(windowStart),
		storage.WithEventTimeBefore(event.EventTimestamp),
		storage.WithSortBy("event_timestamp"),
		storage.WithSortDesc(true),
		storage.WithLimit(svc.config.TypeCap()),
	)
	if err != nil {
		return nil, err
	}
	related = append(related, byType.Data...)

	related = lo.UniqBy(related, func(e types.NetworkEvent) string { return e.ID })
	related = lo.Reject(related, func(e types.NetworkEvent, _ int) bool { return e.ID == event.ID })

	return related, nil
}

// findCausalParent picks the first earlier related event whose (type, state)
// matches a causal rule with the current event as effect.
func (svc eventSvc) findCausalParent(event types.NetworkEvent, related []types.NetworkEvent) string {
	for _, r := range related {
		if !r.EventTimestamp.Before(event.EventTimestamp) {
			continue
		}

		for _, rule := range svc.config.CausalRules {
			if rule.EffectType != event.EventType || rule.EffectState != event.CurrentState {
				continue
			}
			if rule.CauseType != r.EventType || rule.CauseState != r.CurrentState {
				continue
			}
			if rule.SameDevice && r.DeviceID != event.DeviceID {
				continue
			}
			return r.ID
		}
	}

	return ""
}

// findRootCause picks the earliest critical or high device or interface
// state change among the related events.
func findRootCause(related []types.NetworkEvent) string {
	rootCause := ""
	var rootCauseAt int64

	for _, r := range related {
		if r.EventType != types.EventTypeDeviceStateChange && r.EventType != types.EventTypeInterfaceStateChange {
			continue
		}
		if r.Severity != types.EventSeverityCritical && r.Severity != types.EventSeverityHigh {
			continue
		}

		ts := r.EventTimestamp.UnixNano()
		if rootCause == "" || ts < rootCauseAt {
			rootCause = r.ID
			rootCauseAt = ts
		}
	}

	return rootCause
}

// strength is an additive confidence heuristic, capped to 1.0. It is not a
// probability.
func strength(event types.NetworkEvent, related []types.NetworkEvent) float64 {
	score := 0.0

	if event.DeviceID != "" && lo.SomeBy(related, func(e types.NetworkEvent) bool { return e.DeviceID == event.DeviceID }) {
		score += 0.3
	}
	if event.ServiceID != "" && lo.SomeBy(related, func(e types.NetworkEvent) bool { return e.ServiceID == event.ServiceID }) {
		score += 0.2
	}
	if event.CustomerID != "" && lo.SomeBy(related, func(e types.NetworkEvent) bool { return e.CustomerID == event.CustomerID }) {
		score += 0.2
	}

	volume := 0.1 * float64(len(related))
	if volume > 0.3 {
		volume = 0.3
	}
	score += volume

	if score > 1.0 {
		score = 1.0
	}

	return score
}
