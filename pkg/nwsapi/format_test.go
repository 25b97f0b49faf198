package nwsapi

import (
	"testing"

	// Packages
	nws "github.com/mutablelogic/go-nws"
	assert "github.com/stretchr/testify/assert"
)

func strptr(v string) *string   { return &v }
func numptr(v float64) *float64 { return &v }

///////////////////////////////////////////////////////////////////////////////
// TESTS: formatAlert

func Test_formatAlert(t *testing.T) {
	tests := []struct {
		name    string
		feature AlertFeature
		expect  string
	}{
		{
			name: "all fields present",
			feature: AlertFeature{Properties: AlertProperties{
				Event:       strptr("Red Flag Warning"),
				AreaDesc:    strptr("Eastern Sierra"),
				Severity:    strptr("Extreme"),
				Description: strptr("Critical fire weather."),
				Instruction: strptr("Avoid open flames."),
			}},
			expect: "Event: Red Flag Warning\nArea: Eastern Sierra\nSeverity: Extreme\nDescription: Critical fire weather.\nInstructions: Avoid open flames.",
		},
		{
			name:    "all fields missing",
			feature: AlertFeature{},
			expect:  "Event: Unknown\nArea: Unknown\nSeverity: Unknown\nDescription: No description available\nInstructions: No specific instructions provided",
		},
		{
			name: "partial fields",
			feature: AlertFeature{Properties: AlertProperties{
				Event: strptr("Dense Fog Advisory"),
			}},
			expect: "Event: Dense Fog Advisory\nArea: Unknown\nSeverity: Unknown\nDescription: No description available\nInstructions: No specific instructions provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatAlert(tt.feature))
		})
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: formatPeriod

func Test_formatPeriod(t *testing.T) {
	assert := assert.New(t)

	period := ForecastPeriod{
		Name:             strptr("Tuesday Night"),
		Temperature:      numptr(55.5),
		TemperatureUnit:  strptr("F"),
		WindSpeed:        strptr("5 to 10 mph"),
		WindDirection:    strptr("SW"),
		DetailedForecast: strptr("Mostly clear."),
	}

	text, err := formatPeriod(period)
	assert.NoError(err)
	assert.Equal("Tuesday Night:\nTemperature: 55.5°F\nWind: 5 to 10 mph SW\nForecast: Mostly clear.", text)

	// Whole numbers render without a decimal point
	period.Temperature = numptr(72)
	text, err = formatPeriod(period)
	assert.NoError(err)
	assert.Contains(text, "Temperature: 72°F")
}

func Test_formatPeriod_missing(t *testing.T) {
	complete := func() ForecastPeriod {
		return ForecastPeriod{
			Name:             strptr("Tonight"),
			Temperature:      numptr(61),
			TemperatureUnit:  strptr("F"),
			WindSpeed:        strptr("10 mph"),
			WindDirection:    strptr("NW"),
			DetailedForecast: strptr("Partly cloudy."),
		}
	}

	tests := []struct {
		name  string
		unset func(*ForecastPeriod)
	}{
		{"name", func(p *ForecastPeriod) { p.Name = nil }},
		{"temperature", func(p *ForecastPeriod) { p.Temperature = nil }},
		{"temperatureUnit", func(p *ForecastPeriod) { p.TemperatureUnit = nil }},
		{"windSpeed", func(p *ForecastPeriod) { p.WindSpeed = nil }},
		{"windDirection", func(p *ForecastPeriod) { p.WindDirection = nil }},
		{"detailedForecast", func(p *ForecastPeriod) { p.DetailedForecast = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := complete()
			tt.unset(&period)
			_, err := formatPeriod(period)
			assert.ErrorIs(t, err, nws.ErrMissingField)
			assert.ErrorContains(t, err, tt.name)
		})
	}
}
