package nwsapi

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	nws "github.com/mutablelogic/go-nws"
	tool "github.com/mutablelogic/go-nws/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type getAlerts struct {
	client *Client
}

type getForecast struct {
	client *Client
}

var _ tool.Tool = (*getAlerts)(nil)
var _ tool.Tool = (*getForecast)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather tools for registration with a toolkit
func NewTools(opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{
		&getAlerts{client: client},
		&getForecast{client: client},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// ALERTS

func (*getAlerts) Name() string {
	return "get_alerts"
}

func (*getAlerts) Description() string {
	return "Get weather alerts for a US state."
}

// Return the JSON schema for the tool input
func (*getAlerts) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[AlertsRequest](nil)
}

// Run the tool with the given input
func (t *getAlerts) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req AlertsRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, nws.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.State == "" {
		return nil, nws.ErrBadParameter.With("state is required")
	}

	return t.client.Alerts(ctx, req.State)
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST

func (*getForecast) Name() string {
	return "get_forecast"
}

func (*getForecast) Description() string {
	return "Get weather forecast for a location."
}

// Return the JSON schema for the tool input
func (*getForecast) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastRequest](nil)
}

// Run the tool with the given input
func (t *getForecast) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, nws.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Coordinates are passed through without range validation; an
	// out-of-range point surfaces through the upstream as the
	// points-fetch fallback message.
	return t.client.Forecast(ctx, req.Latitude, req.Longitude)
}
