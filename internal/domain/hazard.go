package domain

// EarthquakeData is an earthquake notice.
type EarthquakeData struct {
	Tm  string `json:"tm"`
	Loc string `json:"loc"`
	Lat Number `json:"lat"`
	Lon Number `json:"lon"`
	Mag Number `json:"mag"`
	Dep Number `json:"dep"` // depth, km
	Int string `json:"int"` // intensity
}

// TyphoonInfo is a typhoon position and intensity report.
type TyphoonInfo struct {
	TypID     ID     `json:"typId"`
	TypNm     string `json:"typNm"`
	TypIntlNm string `json:"typIntlNm"`
	Tm        string `json:"tm"`
	Lat       Number `json:"lat"`
	Lon       Number `json:"lon"`
	Pres      Number `json:"pres"` // central pressure, hPa
	Ws        Number `json:"ws"`   // max wind, m/s
	MvDir     string `json:"mvDir"`
	MvSpd     Number `json:"mvSpd"` // km/h
}

// WarningData is a weather warning or advisory issuance.
type WarningData struct {
	TmFc       string `json:"tmFc"`
	TmSeq      string `json:"tmSeq"`
	WarnVar    string `json:"warnVar"`
	WarnStress string `json:"warnStress"`
	RegID      ID     `json:"regId"`
	RegNm      string `json:"regNm"`
	T1         string `json:"t1"` // effective
	T2         string `json:"t2"` // lifted
}

// LightningData is a single lightning stroke.
type LightningData struct {
	Tm        string `json:"tm"`
	Lat       Number `json:"lat"`
	Lon       Number `json:"lon"`
	Intensity Number `json:"intensity"`
	Type      string `json:"type"`
}
