package domain

// ASOSObservation is one row from the Automated Synoptic Observing System.
type ASOSObservation struct {
	Tm        string `json:"tm"`
	StnID     ID     `json:"stnId"`
	StnNm     string `json:"stnNm"`
	Ta        Number `json:"ta"` // air temperature, °C
	TaQcflg   string `json:"taQcflg"`
	Rn        Number `json:"rn"` // precipitation, mm
	RnQcflg   string `json:"rnQcflg"`
	Ws        Number `json:"ws"` // wind speed, m/s
	WsQcflg   string `json:"wsQcflg"`
	Wd        Number `json:"wd"` // wind direction, degrees
	WdQcflg   string `json:"wdQcflg"`
	Hm        Number `json:"hm"` // relative humidity, %
	HmQcflg   string `json:"hmQcflg"`
	Pa        Number `json:"pa"` // station pressure, hPa
	PaQcflg   string `json:"paQcflg"`
	Ps        Number `json:"ps"` // sea level pressure, hPa
	PsQcflg   string `json:"psQcflg"`
	Ss        Number `json:"ss"` // sunshine, hr
	SsQcflg   string `json:"ssQcflg"`
	Icsr      Number `json:"icsr"` // solar radiation, MJ/m²
	IcsrQcflg string `json:"icsrQcflg"`
	Dsnw      Number `json:"dsnw"` // snow depth, cm
	DsnwQcflg string `json:"dsnwQcflg"`
}

// AWSObservation is one row from the Automatic Weather Station network.
type AWSObservation struct {
	Tm      string `json:"tm"`
	StnID   ID     `json:"stnId"`
	StnNm   string `json:"stnNm"`
	Ta      Number `json:"ta"`
	TaQcflg string `json:"taQcflg"`
	Rn      Number `json:"rn"`
	RnQcflg string `json:"rnQcflg"`
	Ws      Number `json:"ws"`
	WsQcflg string `json:"wsQcflg"`
	Wd      Number `json:"wd"`
	WdQcflg string `json:"wdQcflg"`
	Hm      Number `json:"hm"`
	HmQcflg string `json:"hmQcflg"`
	Pa      Number `json:"pa"`
	PaQcflg string `json:"paQcflg"`
}

// AWSLandSurfaceTemperature is an AWS ground surface temperature reading.
type AWSLandSurfaceTemperature struct {
	Tm       string `json:"tm"`
	StnID    ID     `json:"stnId"`
	StnNm    string `json:"stnNm"`
	Lst      Number `json:"lst"` // °C
	LstQcflg string `json:"lstQcflg"`
}

// AWSCloudData is an AWS ceilometer reading.
type AWSCloudData struct {
	Tm        string `json:"tm"`
	StnID     ID     `json:"stnId"`
	StnNm     string `json:"stnNm"`
	Clfm      Number `json:"clfm"` // cloud base height, m
	ClfmQcflg string `json:"clfmQcflg"`
	Ca        Number `json:"ca"` // cloud amount, 0-10
	CaQcflg   string `json:"caQcflg"`
}

// AWSOAData is a grid point from the AWS objective analysis.
type AWSOAData struct {
	Tm string `json:"tm"`
	X  Number `json:"x"` // longitude
	Y  Number `json:"y"` // latitude
	Ta Number `json:"ta"`
	Rn Number `json:"rn"`
	Ws Number `json:"ws"`
	Wd Number `json:"wd"`
	Hm Number `json:"hm"`
	Pa Number `json:"pa"`
}

// NKObservation is a surface observation from a North Korean station.
type NKObservation struct {
	Tm    string `json:"tm"`
	StnID ID     `json:"stnId"`
	StnNm string `json:"stnNm"`
	Ta    Number `json:"ta"`
	Rn    Number `json:"rn"`
	Ws    Number `json:"ws"`
	Wd    Number `json:"wd"`
	Hm    Number `json:"hm"`
	Pa    Number `json:"pa"`
}

// UVObservation is an ultraviolet radiation reading.
type UVObservation struct {
	Tm       string `json:"tm"`
	StnID    ID     `json:"stnId"`
	StnNm    string `json:"stnNm"`
	UVA      Number `json:"uva"` // 320-400nm
	UVAQcflg string `json:"uvaQcflg"`
	UVB      Number `json:"uvb"` // erythemal, 280-320nm
	UVBQcflg string `json:"uvbQcflg"`
}

// DustObservation is a yellow dust (PM10) reading.
type DustObservation struct {
	Tm       string `json:"tm"`
	StnID    ID     `json:"stnId"`
	StnNm    string `json:"stnNm"`
	PM10     Number `json:"pm10"` // μg/m³
	PM10Flag string `json:"pm10Flag"`
}

// SnowObservation is a snow depth reading.
type SnowObservation struct {
	Tm      string `json:"tm"`
	StnID   ID     `json:"stnId"`
	StnNm   string `json:"stnNm"`
	Sd      Number `json:"sd"` // cm
	SdQcflg string `json:"sdQcflg"`
}

// SeasonObservation records a phenological or seasonal event, such as first
// cherry blossom or first frost.
type SeasonObservation struct {
	Year  string `json:"year"`
	StnID ID     `json:"stnId"`
	StnNm string `json:"stnNm"`
	Event string `json:"event"`
	Date  string `json:"date"`
}

// ClimateNormal holds 30-year averages for a station and period.
type ClimateNormal struct {
	StnID   ID     `json:"stnId"`
	StnNm   string `json:"stnNm"`
	AvgTa   Number `json:"avgTa"`
	AvgTmax Number `json:"avgTmax"`
	AvgTmin Number `json:"avgTmin"`
	SumRn   Number `json:"sumRn"`
	AvgWs   Number `json:"avgWs"`
	AvgHm   Number `json:"avgHm"`
}

// StationInfo is station metadata.
type StationInfo struct {
	StnID     ID     `json:"stnId"`
	StnNm     string `json:"stnNm"`
	Lat       Number `json:"lat"`
	Lon       Number `json:"lon"`
	StnEl     Number `json:"stnEl"` // elevation, m
	StnType   string `json:"stnType"`
	StartDate string `json:"startDate"`
}
