package domain

// BuoyObservation is a marine buoy reading.
type BuoyObservation struct {
	Tm     string `json:"tm"`
	BuoyID ID     `json:"buoyId"`
	BuoyNm string `json:"buoyNm"`
	Lat    Number `json:"lat"`
	Lon    Number `json:"lon"`
	Ta     Number `json:"ta"`
	Wh     Number `json:"wh"` // wave height, m
	Wt     Number `json:"wt"` // water temperature, °C
	Ws     Number `json:"ws"`
	Wd     Number `json:"wd"`
}

// AMOSObservation is an aerodrome meteorological observation.
type AMOSObservation struct {
	Tm        string `json:"tm"`
	ICAO      string `json:"icao"`
	AirportNm string `json:"airportNm"`
	Ta        Number `json:"ta"`
	Td        Number `json:"td"` // dew point, °C
	Ws        Number `json:"ws"`
	Wd        Number `json:"wd"`
	Pa        Number `json:"pa"`
	Vis       Number `json:"vis"` // visibility, m
}

// AMDARData is an aircraft meteorological data relay report.
type AMDARData struct {
	Tm       string `json:"tm"`
	FlightID string `json:"flightId"`
	Lat      Number `json:"lat"`
	Lon      Number `json:"lon"`
	Alt      Number `json:"alt"` // ft
	Ta       Number `json:"ta"`
	Ws       Number `json:"ws"`
	Wd       Number `json:"wd"`
}
