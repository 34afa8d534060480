package domain

// RadarImage references a composite or single-site radar image.
type RadarImage struct {
	Tm        string `json:"tm"`
	RadarID   string `json:"radarId"`
	ImageData string `json:"imageData"`
	ImageType string `json:"imageType"`
}

// RadarReflectivity is a reflectivity sample at a point.
type RadarReflectivity struct {
	Tm  string `json:"tm"`
	Lat Number `json:"lat"`
	Lon Number `json:"lon"`
	Ref Number `json:"ref"` // dBZ
}

// SatelliteFile is an entry in the satellite file listing.
type SatelliteFile struct {
	FileName string `json:"fileName"`
	FileSize Number `json:"fileSize"`
	FileDate string `json:"fileDate"`
	Sat      string `json:"sat"`
	Area     string `json:"area"`
	Product  string `json:"product"`
}

// SatelliteImagery is a satellite image product.
type SatelliteImagery struct {
	Level   string `json:"level"`
	Product string `json:"product"`
	Area    string `json:"area"`
	Tm      string `json:"tm"`
	Data    string `json:"data"`
}
