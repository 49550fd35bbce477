package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/incidents"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/router"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/presentation/api"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestHealthEndpoint(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatRequestsWithoutTokenAreRejected(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alarms", "", nil)

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestThatGetAlarmsReturns200(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alarms", "sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestThatGetUnknownAlarmReturns404(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alarms/nosuchalarm", "sometoken", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func setupTest(t *testing.T) (*chi.Mux, *is.I) {
	is := is.New(t)

	alarmSvc := &alarms.AlarmServiceMock{
		QueryFunc: func(ctx context.Context, tenants []string, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
			return types.Collection[types.Alarm]{}, nil
		},
		GetByIDFunc: func(ctx context.Context, alarmID string, tenants []string) (types.Alarm, error) {
			return types.Alarm{}, alarms.ErrAlarmNotFound
		},
	}
	eventSvc := &events.EventServiceMock{}
	incidentSvc := &incidents.IncidentServiceMock{}

	r := router.New("testService")

	_, err := api.RegisterHandlers(context.Background(), r, bytes.NewBufferString(policyMock), alarmSvc, eventSvc, incidentSvc)
	is.NoErr(err)

	return r, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path, token string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	if token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

const policyMock string = `
package example.authz

import rego.v1

default allow := false

allow := {"tenants": ["default"]} if {
	input.token != ""
}
`
