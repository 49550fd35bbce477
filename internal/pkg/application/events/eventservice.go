package events

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

var (
	ErrEventNotFound       = fmt.Errorf("event not found")
	ErrCorrelationNotFound = fmt.Errorf("correlation group not found")
)

//go:generate moq -rm -out eventservice_mock.go . EventService
type EventService interface {
	RegisterTopicMessageHandler(ctx context.Context) error

	Process(ctx context.Context, event types.NetworkEvent) (types.NetworkEvent, types.CorrelationResult, []types.RuleActionResult, error)
	GetCorrelatedEvents(ctx context.Context, correlationID string, includeChildren bool, tenants []string) (types.EventGroup, error)
	AnalyzePatterns(ctx context.Context, windowHours, minEventCount int, tenants []string) (types.PatternReport, error)

	Query(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error)
	AddRule(ctx context.Context, rule types.EventRule) (types.EventRule, error)
	QueryRules(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error)
}

//go:generate moq -rm -out eventstorage_mock.go . EventStorage
type EventStorage interface {
	AddEvent(ctx context.Context, event types.NetworkEvent) error
	GetEvent(ctx context.Context, conditions ...storage.ConditionFunc) (types.NetworkEvent, error)
	QueryEvents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error)
	UpdateEventCorrelation(ctx context.Context, event types.NetworkEvent) error
	AddEventRule(ctx context.Context, rule types.EventRule) error
	QueryEventRules(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error)
}

type eventSvc struct {
	storage   EventStorage
	messenger messaging.MsgContext
	config    *Config
}

func New(s EventStorage, m messaging.MsgContext, cfg *Config) EventService {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &eventSvc{
		storage:   s,
		messenger: m,
		config:    cfg,
	}
}

func (svc eventSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("network.event", NewNetworkEventHandler(svc.messenger, svc))
}

// Process ingests an event, correlates it against the recent window, applies
// the event rules and persists the outcome. The event itself is always
// persisted; correlation and rule application are best effort side effects
// whose failures do not fail the ingest.
func (svc eventSvc) Process(ctx context.Context, event types.NetworkEvent) (types.NetworkEvent, types.CorrelationResult, []types.RuleActionResult, error) {
	log := logging.GetFromContext(ctx)

	if event.Tenant == "" {
		return types.NetworkEvent{}, types.CorrelationResult{}, nil, fmt.Errorf("no tenant is set on event")
	}
	if event.EventType == "" {
		return types.NetworkEvent{}, types.CorrelationResult{}, nil, fmt.Errorf("no event type is set on event")
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.EventTimestamp.IsZero() {
		event.EventTimestamp = time.Now().UTC()
	}
	event.ProcessedAt = time.Now().UTC()

	err := svc.storage.AddEvent(ctx, event)
	if err != nil {
		return types.NetworkEvent{}, types.CorrelationResult{}, nil, err
	}

	correlation, err := svc.correlate(ctx, &event)
	if err != nil {
		log.Error("event correlation failed", "event_id", event.ID, "err", err.Error())
		correlation = types.CorrelationResult{}
	}

	results := svc.applyRules(ctx, &event)

	err = svc.storage.UpdateEventCorrelation(ctx, event)
	if err != nil {
		log.Error("could not store correlation outcome", "event_id", event.ID, "err", err.Error())
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.EventProcessed{
		Event:       event,
		Correlation: correlation,
		Tenant:      event.Tenant,
		Timestamp:   event.ProcessedAt,
	})
	if err != nil {
		log.Error("could not publish processed event", "event_id", event.ID, "err", err.Error())
	}

	return event, correlation, results, nil
}

// GetCorrelatedEvents loads a correlation group and optionally builds the
// parent/child hierarchy over it. Events whose parent left the group show up
// as orphaned.
func (svc eventSvc) GetCorrelatedEvents(ctx context.Context, correlationID string, includeChildren bool, tenants []string) (types.EventGroup, error) {
	group, err := svc.storage.QueryEvents(ctx,
		storage.WithCorrelationID(correlationID),
		storage.WithTenants(tenants),
		storage.WithSortBy("event_timestamp"),
		storage.WithLimit(1000),
	)
	if err != nil {
		return types.EventGroup{}, err
	}

	if len(group.Data) == 0 {
		return types.EventGroup{}, ErrCorrelationNotFound
	}

	events := group.Data

	if includeChildren {
		ids := make([]string, 0, len(events))
		known := map[string]bool{}
		for _, e := range events {
			ids = append(ids, e.ID)
			known[e.ID] = true
		}

		children, err := svc.storage.QueryEvents(ctx,
			storage.WithParentEventIDs(ids),
			storage.WithTenants(tenants),
			storage.WithSortBy("event_timestamp"),
			storage.WithLimit(1000),
		)
		if err != nil {
			return types.EventGroup{}, err
		}

		for _, c := range children.Data {
			if !known[c.ID] {
				known[c.ID] = true
				events = append(events, c)
			}
		}
	}

	result := types.EventGroup{
		CorrelationID: correlationID,
		Events:        events,
	}

	if includeChildren {
		result.Hierarchy = buildHierarchy(events)
	}

	return result, nil
}

func buildHierarchy(events []types.NetworkEvent) *types.EventHierarchy {
	inGroup := map[string]bool{}
	for _, e := range events {
		inGroup[e.ID] = true
	}

	h := &types.EventHierarchy{
		RootEvents: make([]string, 0),
		Children:   map[string][]string{},
	}

	for _, e := range events {
		if e.ParentEventID == "" {
			h.RootEvents = append(h.RootEvents, e.ID)
			continue
		}
		if !inGroup[e.ParentEventID] {
			h.Orphaned = append(h.Orphaned, e.ID)
			continue
		}
		h.Children[e.ParentEventID] = append(h.Children[e.ParentEventID], e.ID)
	}

	return h
}

func (svc eventSvc) Query(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.NetworkEvent], error) {
	conditions = append(conditions, storage.WithTenants(tenants))

	events, err := svc.storage.QueryEvents(ctx, conditions...)
	if err != nil {
		return types.Collection[types.NetworkEvent]{}, err
	}

	return events, nil
}

func (svc eventSvc) AddRule(ctx context.Context, rule types.EventRule) (types.EventRule, error) {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	err := svc.storage.AddEventRule(ctx, rule)
	if err != nil {
		return types.EventRule{}, err
	}

	return rule, nil
}

func (svc eventSvc) QueryRules(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.EventRule], error) {
	conditions = append(conditions, storage.WithTenants(tenants))

	rules, err := svc.storage.QueryEventRules(ctx, conditions...)
	if err != nil {
		return types.Collection[types.EventRule]{}, err
	}

	return rules, nil
}
