package nwsapi

import (
	"context"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Alerts returns the active weather alerts for a US state as formatted
// text. The state code is passed through verbatim; an unknown code
// surfaces through the upstream as the fetch-failed message. Transport
// failures never return an error, only fallback text.
func (c *Client) Alerts(ctx context.Context, state string) (string, error) {
	data, ok := c.activeAlerts(ctx, state)
	if !ok || data.Features == nil {
		return "Unable to fetch alerts or no alerts found.", nil
	}
	if len(*data.Features) == 0 {
		return "No active alerts for this state.", nil
	}

	alerts := make([]string, 0, len(*data.Features))
	for _, feature := range *data.Features {
		alerts = append(alerts, formatAlert(feature))
	}
	return strings.Join(alerts, separator), nil
}

// Forecast returns a short forecast for a point as formatted text, at
// most five periods. Resolving the forecast takes two dependent fetches:
// the point metadata carries the URL for the second. Transport failures
// on either fetch return fallback text; a forecast period with a missing
// required field returns ErrMissingField.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64) (string, error) {
	points, ok := c.points(ctx, latitude, longitude)
	if !ok {
		return "Unable to fetch points data for this location", nil
	}

	forecastURL := points.Properties.Forecast
	if forecastURL == "" {
		return "No forecast data available for this location", nil
	}

	data, ok := c.forecast(ctx, forecastURL)
	if !ok {
		return "Unable to get forecast data for this location", nil
	}

	periods := data.Properties.Periods
	if len(periods) > 5 {
		periods = periods[:5]
	}

	forecasts := make([]string, 0, len(periods))
	for _, period := range periods {
		forecast, err := formatPeriod(period)
		if err != nil {
			return "", err
		}
		forecasts = append(forecasts, forecast)
	}
	return strings.Join(forecasts, separator), nil
}
