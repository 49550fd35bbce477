package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/incidents"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func testRequest(method, target string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	ctx := auth.WithAllowedTenants(req.Context(), []string{"default"})

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueryAlarmsHandler(t *testing.T) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		QueryFunc: func(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
			is.Equal([]string{"default"}, tenants)
			return types.Collection[types.Alarm]{
				Data:       []types.Alarm{{ID: "a1", Tenant: "default", Status: types.AlarmStatusActive}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	req := testRequest(http.MethodGet, "/api/v0/alarms?status=active", nil, nil)
	res := httptest.NewRecorder()

	queryAlarmsHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var collection types.Collection[types.Alarm]
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &collection))
	is.Equal(1, len(collection.Data))
	is.Equal("a1", collection.Data[0].ID)
}

func TestGetAlarmDetailsReturns404OnUnknownAlarm(t *testing.T) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		GetByIDFunc: func(ctx context.Context, alarmID string, tenants []string) (types.Alarm, error) {
			return types.Alarm{}, alarms.ErrAlarmNotFound
		},
	}

	req := testRequest(http.MethodGet, "/api/v0/alarms/nosuchalarm", nil, map[string]string{"alarmID": "nosuchalarm"})
	res := httptest.NewRecorder()

	getAlarmDetails(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestAcknowledgeAlarmHandler(t *testing.T) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		AcknowledgeFunc: func(ctx context.Context, alarmID, by, notes string, tenants []string) (types.Alarm, error) {
			is.Equal("a1", alarmID)
			is.Equal("alice", by)
			return types.Alarm{ID: alarmID, Status: types.AlarmStatusAcknowledged, AcknowledgedBy: by}, nil
		},
	}

	body := bytes.NewBufferString(`{"by":"alice","notes":"looking into it"}`)
	req := testRequest(http.MethodPost, "/api/v0/alarms/a1/acknowledge", body, map[string]string{"alarmID": "a1"})
	res := httptest.NewRecorder()

	acknowledgeAlarmHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var alarm types.Alarm
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &alarm))
	is.Equal(types.AlarmStatusAcknowledged, alarm.Status)
}

func TestAcknowledgeAlarmHandlerRejectsInvalidTransition(t *testing.T) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		AcknowledgeFunc: func(ctx context.Context, alarmID, by, notes string, tenants []string) (types.Alarm, error) {
			return types.Alarm{}, alarms.ErrInvalidTransition
		},
	}

	body := bytes.NewBufferString(`{"by":"alice"}`)
	req := testRequest(http.MethodPost, "/api/v0/alarms/a1/acknowledge", body, map[string]string{"alarmID": "a1"})
	res := httptest.NewRecorder()

	acknowledgeAlarmHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestSuppressAlarmHandlerPassesDuration(t *testing.T) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		SuppressFunc: func(ctx context.Context, alarmID, by string, duration time.Duration, reason string, tenants []string) (types.Alarm, error) {
			is.Equal(30*time.Minute, duration)
			return types.Alarm{ID: alarmID, Status: types.AlarmStatusSuppressed}, nil
		},
	}

	body := bytes.NewBufferString(`{"by":"bob","durationMinutes":30,"reason":"maintenance"}`)
	req := testRequest(http.MethodPost, "/api/v0/alarms/a1/suppress", body, map[string]string{"alarmID": "a1"})
	res := httptest.NewRecorder()

	suppressAlarmHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.SuppressCalls()))
}

func TestCreateEventHandler(t *testing.T) {
	is := is.New(t)

	svc := &events.EventServiceMock{
		ProcessFunc: func(ctx context.Context, event types.NetworkEvent) (types.NetworkEvent, types.CorrelationResult, []types.RuleActionResult, error) {
			event.ID = "e1"
			event.CorrelationID = "corr-1"
			return event, types.CorrelationResult{CorrelationID: "corr-1", RelatedCount: 2}, nil, nil
		},
	}

	body := bytes.NewBufferString(`{"tenant":"default","eventType":"device_state_change","severity":"critical","deviceID":"R1"}`)
	req := testRequest(http.MethodPost, "/api/v0/events", body, nil)
	res := httptest.NewRecorder()

	createEventHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var response processedEventResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal("e1", response.Event.ID)
	is.Equal("corr-1", response.Correlation.CorrelationID)
}

func TestGetCorrelatedEventsHandler(t *testing.T) {
	is := is.New(t)

	svc := &events.EventServiceMock{
		GetCorrelatedEventsFunc: func(ctx context.Context, correlationID string, includeChildren bool, tenants []string) (types.EventGroup, error) {
			is.True(includeChildren)
			return types.EventGroup{CorrelationID: correlationID}, nil
		},
	}

	req := testRequest(http.MethodGet, "/api/v0/events/correlated/corr-1?includeChildren=true", nil, map[string]string{"correlationID": "corr-1"})
	res := httptest.NewRecorder()

	getCorrelatedEventsHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
}

func TestGetPatternsHandlerParsesWindow(t *testing.T) {
	is := is.New(t)

	svc := &events.EventServiceMock{
		AnalyzePatternsFunc: func(ctx context.Context, windowHours, minEventCount int, tenants []string) (types.PatternReport, error) {
			is.Equal(48, windowHours)
			is.Equal(10, minEventCount)
			return types.PatternReport{}, nil
		},
	}

	req := testRequest(http.MethodGet, "/api/v0/events/patterns?window=48&mincount=10", nil, nil)
	res := httptest.NewRecorder()

	getPatternsHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
}

func TestCreateIncidentHandlerRequiresTitle(t *testing.T) {
	is := is.New(t)

	svc := &incidents.IncidentServiceMock{
		CreateFromCorrelationFunc: func(ctx context.Context, correlationID, title, description, assignedTo string, tenants []string) (types.IncidentRef, error) {
			return types.IncidentRef{}, incidents.ErrNoTitle
		},
	}

	body := bytes.NewBufferString(`{"correlationID":"corr-1"}`)
	req := testRequest(http.MethodPost, "/api/v0/incidents", body, nil)
	res := httptest.NewRecorder()

	createIncidentHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestCreateIncidentHandler(t *testing.T) {
	is := is.New(t)

	svc := &incidents.IncidentServiceMock{
		CreateFromCorrelationFunc: func(ctx context.Context, correlationID, title, description, assignedTo string, tenants []string) (types.IncidentRef, error) {
			return types.IncidentRef{AlarmID: "a1", CorrelationID: correlationID, EventCount: 3, AssignedTo: assignedTo}, nil
		},
	}

	body := bytes.NewBufferString(`{"correlationID":"corr-1","title":"core outage","assignedTo":"noc-oncall"}`)
	req := testRequest(http.MethodPost, "/api/v0/incidents", body, nil)
	res := httptest.NewRecorder()

	createIncidentHandler(discardLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var ref types.IncidentRef
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &ref))
	is.Equal("a1", ref.AlarmID)
	is.Equal(3, ref.EventCount)
}
