package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/matryer/is"
)

func TestGetAlarm(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/alarms/a1", r.URL.Path)
		is.Equal("Bearer sometoken", r.Header.Get("Authorization"))

		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"alarmID":"a1","tenant":"default","alarmType":"device_down","severity":"critical","status":"active","title":"R1 is down"}`))
	}))
	defer server.Close()

	c := New(server.URL, "sometoken")

	alarm, err := c.GetAlarm(context.Background(), "a1")
	is.NoErr(err)

	is.Equal("a1", alarm.ID)
	is.Equal(types.AlarmStatusActive, alarm.Status)
	is.Equal(types.AlarmSeverityCritical, alarm.Severity)
}

func TestGetAlarmReturnsErrAlarmNotFound(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, "sometoken")

	_, err := c.GetAlarm(context.Background(), "nosuchalarm")
	is.Equal(err, ErrAlarmNotFound)
}

func TestQueryAlarms(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/alarms", r.URL.Path)
		is.Equal("active", r.URL.Query().Get("status"))

		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"Data":[{"alarmID":"a1"},{"alarmID":"a2"}],"Count":2,"TotalCount":2}`))
	}))
	defer server.Close()

	c := New(server.URL, "sometoken")

	params := url.Values{}
	params.Add("status", "active")

	collection, err := c.QueryAlarms(context.Background(), params)
	is.NoErr(err)

	is.Equal(2, len(collection.Data))
	is.Equal(uint64(2), collection.TotalCount)
}
