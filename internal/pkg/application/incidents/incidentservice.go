package incidents

import (
	"context"
	"fmt"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
)

var ErrNoTitle = fmt.Errorf("no title is set on incident")

//go:generate moq -rm -out incidentservice_mock.go . IncidentService
type IncidentService interface {
	CreateFromCorrelation(ctx context.Context, correlationID, title, description, assignedTo string, tenants []string) (types.IncidentRef, error)
}

type incidentSvc struct {
	alarmSvc alarms.AlarmService
	eventSvc events.EventService
}

func New(a alarms.AlarmService, e events.EventService) IncidentService {
	return &incidentSvc{
		alarmSvc: a,
		eventSvc: e,
	}
}

// CreateFromCorrelation promotes a correlation group to an incident alarm.
// The group is only read; the alarm lifecycle manager owns all alarm state.
func (svc incidentSvc) CreateFromCorrelation(ctx context.Context, correlationID, title, description, assignedTo string, tenants []string) (types.IncidentRef, error) {
	if title == "" {
		return types.IncidentRef{}, ErrNoTitle
	}

	group, err := svc.eventSvc.GetCorrelatedEvents(ctx, correlationID, true, tenants)
	if err != nil {
		return types.IncidentRef{}, err
	}

	tenant := group.Events[0].Tenant
	rootCause := ""
	deviceID := ""

	for _, e := range group.Events {
		if e.RootCauseEventID != "" && rootCause == "" {
			rootCause = e.RootCauseEventID
		}
		if e.DeviceID != "" && deviceID == "" {
			deviceID = e.DeviceID
		}
	}

	now := time.Now().UTC()

	alarmContext := map[string]any{
		"event_count": len(group.Events),
	}
	if assignedTo != "" {
		alarmContext["assigned_to"] = assignedTo
	}
	if rootCause != "" {
		alarmContext["root_cause_event_id"] = rootCause
	}

	alarm, _, err := svc.alarmSvc.CreateOrMerge(ctx, types.Alarm{
		Tenant:          tenant,
		AlarmType:       types.AlarmTypeIncident,
		Severity:        types.AlarmSeverityMajor,
		DeviceID:        deviceID,
		Title:           title,
		Description:     description,
		Source:          "incident-builder",
		FirstOccurrence: now,
		LastOccurrence:  now,
		CorrelationID:   correlationID,
		Context:         alarmContext,
		Tags:            []string{"incident", "correlation:" + correlationID},
	})
	if err != nil {
		return types.IncidentRef{}, err
	}

	return types.IncidentRef{
		AlarmID:       alarm.ID,
		CorrelationID: correlationID,
		EventCount:    len(group.Events),
		AssignedTo:    assignedTo,
	}, nil
}
