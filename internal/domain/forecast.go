package domain

// ForecastData is a regional short or medium range forecast row.
type ForecastData struct {
	TmFc  string `json:"tmFc"`
	RegID ID     `json:"regId"`
	TaMin Number `json:"taMin"`
	TaMax Number `json:"taMax"`
	Wf    string `json:"wf"`   // weather description
	RnSt  Number `json:"rnSt"` // precipitation probability, %
}

// VillageForecastItem is one category value from the village forecast
// OpenAPI services (ultra short term nowcast and forecast, village forecast).
// Nowcast rows carry ObsrValue; forecast rows carry FcstDate, FcstTime and FcstValue.
type VillageForecastItem struct {
	BaseDate  string `json:"baseDate"`
	BaseTime  string `json:"baseTime"`
	Category  string `json:"category"`
	FcstDate  string `json:"fcstDate,omitempty"`
	FcstTime  string `json:"fcstTime,omitempty"`
	FcstValue string `json:"fcstValue,omitempty"`
	ObsrValue string `json:"obsrValue,omitempty"`
	Nx        Number `json:"nx"`
	Ny        Number `json:"ny"`
}

// Record is an untyped row for products whose columns vary by request
// options, such as grids, zone codes and forecast messages.
type Record map[string]any
