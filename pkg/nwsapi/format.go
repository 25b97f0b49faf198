package nwsapi

import (
	"strconv"
	"strings"

	// Packages
	nws "github.com/mutablelogic/go-nws"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// separator joins formatted blocks in a tool response
const separator = "\n--\n"

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// formatAlert renders one alert feature as a fixed-layout text block.
// Missing fields fall back to placeholder text.
func formatAlert(feature AlertFeature) string {
	props := feature.Properties
	var b strings.Builder
	b.WriteString("Event: " + orElse(props.Event, "Unknown") + "\n")
	b.WriteString("Area: " + orElse(props.AreaDesc, "Unknown") + "\n")
	b.WriteString("Severity: " + orElse(props.Severity, "Unknown") + "\n")
	b.WriteString("Description: " + orElse(props.Description, "No description available") + "\n")
	b.WriteString("Instructions: " + orElse(props.Instruction, "No specific instructions provided"))
	return b.String()
}

// formatPeriod renders one forecast period as a fixed-layout text block.
// Unlike alerts, the period fields are required: a missing field returns
// ErrMissingField rather than placeholder text, so an upstream contract
// violation is not silently masked.
func formatPeriod(period ForecastPeriod) (string, error) {
	if period.Name == nil {
		return "", nws.ErrMissingField.With("name")
	}
	if period.Temperature == nil {
		return "", nws.ErrMissingField.With("temperature")
	}
	if period.TemperatureUnit == nil {
		return "", nws.ErrMissingField.With("temperatureUnit")
	}
	if period.WindSpeed == nil {
		return "", nws.ErrMissingField.With("windSpeed")
	}
	if period.WindDirection == nil {
		return "", nws.ErrMissingField.With("windDirection")
	}
	if period.DetailedForecast == nil {
		return "", nws.ErrMissingField.With("detailedForecast")
	}

	var b strings.Builder
	b.WriteString(*period.Name + ":\n")
	b.WriteString("Temperature: " + strconv.FormatFloat(*period.Temperature, 'f', -1, 64) + "°" + *period.TemperatureUnit + "\n")
	b.WriteString("Wind: " + *period.WindSpeed + " " + *period.WindDirection + "\n")
	b.WriteString("Forecast: " + *period.DetailedForecast)
	return b.String(), nil
}

// orElse returns the value of the field, or the fallback when missing
func orElse(field *string, fallback string) string {
	if field == nil {
		return fallback
	}
	return *field
}
