/*
nwsapi implements a client for the US National Weather Service API
https://www.weather.gov/documentation/services-web-api
*/
package nwsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint  = "https://api.weather.gov"
	userAgent = "weather-app/1.0"
	mimeType  = "application/geo+json"
	timeout   = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The API is unauthenticated but requires a
// User-Agent identifying the caller.
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptUserAgent(userAgent),
		client.OptHeader("Accept", mimeType),
		client.OptTimeout(timeout),
	}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// geoJSON wraps a decode target so the body is JSON-decoded whatever the
// Content-Type header says. The API answers with application/geo+json,
// which go-client does not decode natively.
type geoJSON struct {
	out any
}

var _ client.Unmarshaler = (*geoJSON)(nil)

func (g *geoJSON) Unmarshal(_ http.Header, body io.Reader) error {
	return json.NewDecoder(body).Decode(g.out)
}

// fetch issues a single GET request and decodes the response body into out.
// Any failure on the way - network error, timeout, non-2xx status or an
// undecodable body - is absorbed and reported as false. There is no retry
// and no caching; every call is a fresh round trip.
func (c *Client) fetch(ctx context.Context, out any, opts ...client.RequestOpt) bool {
	return c.DoWithContext(ctx, nil, &geoJSON{out: out}, opts...) == nil
}

// activeAlerts fetches the active alert collection for a state.
func (c *Client) activeAlerts(ctx context.Context, state string) (*AlertCollection, bool) {
	var response AlertCollection
	if !c.fetch(ctx, &response, client.OptPath("alerts", "active", "area", state)) {
		return nil, false
	}
	return &response, true
}

// points fetches the point metadata which carries the forecast URL.
func (c *Client) points(ctx context.Context, latitude, longitude float64) (*PointsResponse, bool) {
	var response PointsResponse
	point := formatCoord(latitude) + "," + formatCoord(longitude)
	if !c.fetch(ctx, &response, client.OptPath("points", point)) {
		return nil, false
	}
	return &response, true
}

// forecast fetches the forecast periods from the URL returned by points.
func (c *Client) forecast(ctx context.Context, url string) (*ForecastResponse, bool) {
	var response ForecastResponse
	if !c.fetch(ctx, &response, client.OptReqEndpoint(url)) {
		return nil, false
	}
	return &response, true
}

// formatCoord renders a coordinate with the shortest exact representation,
// so the URL carries the value as given, without rounding.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
