package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("noc-alarm-mgmt-client")

var ErrAlarmNotFound = fmt.Errorf("alarm not found")

type AlarmManagementClient interface {
	GetAlarm(ctx context.Context, alarmID string) (types.Alarm, error)
	QueryAlarms(ctx context.Context, params url.Values) (types.Collection[types.Alarm], error)
}

type almClient struct {
	url   string
	token string
}

func New(almURL, token string) AlarmManagementClient {
	return &almClient{
		url:   almURL,
		token: token,
	}
}

func (c *almClient) GetAlarm(ctx context.Context, alarmID string) (types.Alarm, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.get(ctx, c.url+"/api/v0/alarms/"+alarmID)
	if err != nil {
		return types.Alarm{}, err
	}

	alarm := types.Alarm{}

	err = json.Unmarshal(body, &alarm)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Alarm{}, err
	}

	return alarm, nil
}

func (c *almClient) QueryAlarms(ctx context.Context, params url.Values) (types.Collection[types.Alarm], error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alarms")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	requestURL := c.url + "/api/v0/alarms"
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	collection := types.Collection[types.Alarm]{}

	err = json.Unmarshal(body, &collection)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Collection[types.Alarm]{}, err
	}

	return collection, nil
}

func (c *almClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve alarm information: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAlarmNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
