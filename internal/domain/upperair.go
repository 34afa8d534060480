package domain

// RadiosondeData is one level of an upper air sounding.
type RadiosondeData struct {
	Tm     string `json:"tm"`
	StnID  ID     `json:"stnId"`
	Pres   Number `json:"pres"`
	Height Number `json:"height"`
	Ta     Number `json:"ta"`
	Td     Number `json:"td"`
	Ws     Number `json:"ws"`
	Wd     Number `json:"wd"`
}

// StabilityIndex holds atmospheric stability indices derived from a sounding.
type StabilityIndex struct {
	StnID ID     `json:"stnId"`
	KI    Number `json:"ki"`
	LI    Number `json:"li"`
	SI    Number `json:"si"`
	TT    Number `json:"tt"`
}

// WindProfilerData is one level of a wind profiler observation.
type WindProfilerData struct {
	Tm     string `json:"tm"`
	StnID  ID     `json:"stnId"`
	Height Number `json:"height"`
	Ws     Number `json:"ws"`
	Wd     Number `json:"wd"`
}
