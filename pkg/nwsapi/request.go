package nwsapi

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// AlertsRequest defines the input for the active alerts query
type AlertsRequest struct {
	State string `json:"state" jsonschema:"Two-letter US state code (e.g. CA, NY)"`
}

// ForecastRequest defines the input for the point forecast query
type ForecastRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location"`
}
