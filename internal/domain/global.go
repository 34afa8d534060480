package domain

// SynopObservation is a GTS SYNOP surface report.
type SynopObservation struct {
	Tm    string `json:"tm"`
	StnID ID     `json:"stnId"`
	Lat   Number `json:"lat"`
	Lon   Number `json:"lon"`
	Ta    Number `json:"ta"`
	Pa    Number `json:"pa"`
	Ws    Number `json:"ws"`
	Wd    Number `json:"wd"`
}

// ShipObservation is a GTS ship report. GTS drifting buoy reports share this shape.
type ShipObservation struct {
	Tm     string `json:"tm"`
	ShipID string `json:"shipId"`
	Lat    Number `json:"lat"`
	Lon    Number `json:"lon"`
	Ta     Number `json:"ta"`
	Wt     Number `json:"wt"`
	Ws     Number `json:"ws"`
	Wd     Number `json:"wd"`
}

// AircraftReport is a GTS AIREP report.
type AircraftReport struct {
	Tm       string `json:"tm"`
	FlightID string `json:"flightId"`
	Lat      Number `json:"lat"`
	Lon      Number `json:"lon"`
	Alt      Number `json:"alt"`
	Ta       Number `json:"ta"`
	Ws       Number `json:"ws"`
	Wd       Number `json:"wd"`
}

// ChartData references a weather chart image.
type ChartData struct {
	Tm        string `json:"tm"`
	ChartType string `json:"chartType"`
	ImageData string `json:"imageData"`
}
