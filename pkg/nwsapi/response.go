package nwsapi

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

// AlertCollection is the GeoJSON feature collection returned for active
// alerts. The pointer distinguishes a response without a "features" key
// from one with an empty array.
type AlertCollection struct {
	Features *[]AlertFeature `json:"features"`
}

// AlertFeature is one GeoJSON record representing a single active alert
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties are the alert fields used for formatting. All fields
// are optional upstream; nil means the field was missing or null.
type AlertProperties struct {
	Event       *string `json:"event"`
	AreaDesc    *string `json:"areaDesc"`
	Severity    *string `json:"severity"`
	Description *string `json:"description"`
	Instruction *string `json:"instruction"`
}

// PointsResponse is the point metadata for a latitude/longitude pair.
// Not every point resolves to a forecast, so the URL may be empty.
type PointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

// ForecastResponse is the forecast period list for a point
type ForecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// ForecastPeriod is one named time slice (e.g. "Tonight") in a forecast.
// The fields are required once a forecast response decodes; a nil field
// is a contract violation by the upstream, not an expected state.
type ForecastPeriod struct {
	Name             *string  `json:"name"`
	Temperature      *float64 `json:"temperature"`
	TemperatureUnit  *string  `json:"temperatureUnit"`
	WindSpeed        *string  `json:"windSpeed"`
	WindDirection    *string  `json:"windDirection"`
	DetailedForecast *string  `json:"detailedForecast"`
}
