package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var windDirectionKorean = map[string]string{
	"N":   "북",
	"NNE": "북북동",
	"NE":  "북동",
	"ENE": "동북동",
	"E":   "동",
	"ESE": "동남동",
	"SE":  "남동",
	"SSE": "남남동",
	"S":   "남",
	"SSW": "남남서",
	"SW":  "남서",
	"WSW": "서남서",
	"W":   "서",
	"WNW": "서북서",
	"NW":  "북서",
	"NNW": "북북서",
}

var precipitationTypes = map[int]string{
	0: "강수 없음",
	1: "비",
	2: "비/눈",
	3: "눈",
	4: "소나기",
	5: "빗방울",
	6: "진눈깨비",
	7: "눈날림",
}

var skyConditions = map[int]string{
	1: "맑음",
	3: "구름많음",
	4: "흐림",
}

var weatherPhenomena = map[int]string{
	0: "없음",
	1: "비",
	2: "비/눈",
	3: "눈",
	4: "소나기",
}

// DegreesToDirection returns the nearest of the 16 compass points for a wind
// direction in degrees. Values outside 0-360 wrap.
func DegreesToDirection(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Floor(deg/22.5+0.5)) % len(compassPoints)
	return compassPoints[idx]
}

// WindDirectionKorean translates a compass point (e.g. "NE") to Korean.
// Unknown input is returned unchanged.
func WindDirectionKorean(dir string) string {
	if kr, ok := windDirectionKorean[strings.ToUpper(dir)]; ok {
		return kr
	}
	return dir
}

// PrecipitationType translates a PTY code.
func PrecipitationType(code int) string { return lookupCode(precipitationTypes, code) }

// SkyCondition translates a SKY code.
func SkyCondition(code int) string { return lookupCode(skyConditions, code) }

// WeatherPhenomenon translates a present weather code.
func WeatherPhenomenon(code int) string { return lookupCode(weatherPhenomena, code) }

func lookupCode(table map[int]string, code int) string {
	if s, ok := table[code]; ok {
		return s
	}
	return fmt.Sprintf("알 수 없음 (%d)", code)
}

// Summary is the subset of an observation rendered as a one-line Korean
// description. Nil fields are omitted.
type Summary struct {
	StationName string
	Ta          *float64
	Hm          *float64
	WindDeg     *float64
	Ws          *float64
	PTY         *int
	Sky         *int
	Rn          *float64
}

// String renders the summary, e.g.
// "[서울] 기온: 15.5°C, 습도: 65%, 풍향: 북동, 풍속: 3.2m/s, 강수: 강수 없음, 하늘: 맑음".
func (s Summary) String() string {
	var parts []string
	if s.Ta != nil {
		parts = append(parts, "기온: "+formatFloat(*s.Ta)+"°C")
	}
	if s.Hm != nil {
		parts = append(parts, "습도: "+formatFloat(*s.Hm)+"%")
	}
	if s.WindDeg != nil {
		parts = append(parts, "풍향: "+WindDirectionKorean(DegreesToDirection(*s.WindDeg)))
	}
	if s.Ws != nil {
		parts = append(parts, "풍속: "+formatFloat(*s.Ws)+"m/s")
	}
	if s.PTY != nil {
		parts = append(parts, "강수: "+PrecipitationType(*s.PTY))
	}
	if s.Sky != nil {
		parts = append(parts, "하늘: "+SkyCondition(*s.Sky))
	}
	if s.Rn != nil && *s.Rn != 0 {
		parts = append(parts, "강수량: "+formatFloat(*s.Rn)+"mm")
	}

	line := strings.Join(parts, ", ")
	if s.StationName != "" {
		return strings.TrimSpace("[" + s.StationName + "] " + line)
	}
	return line
}

// Summary extracts the summarizable fields of an ASOS observation. Fields
// that were not reported are left out.
func (o ASOSObservation) Summary() Summary {
	return Summary{
		StationName: o.StnNm,
		Ta:          temperature(o.Ta),
		Hm:          nonNegative(o.Hm),
		WindDeg:     nonNegative(o.Wd),
		Ws:          nonNegative(o.Ws),
		Rn:          nonNegative(o.Rn),
	}
}

// Summary extracts the summarizable fields of an AWS observation. Fields
// that were not reported are left out.
func (o AWSObservation) Summary() Summary {
	return Summary{
		StationName: o.StnNm,
		Ta:          temperature(o.Ta),
		Hm:          nonNegative(o.Hm),
		WindDeg:     nonNegative(o.Wd),
		Ws:          nonNegative(o.Ws),
		Rn:          nonNegative(o.Rn),
	}
}

// missingTemperature is the upper bound of the -99 / -99.9 missing markers.
const missingTemperature = -99

func temperature(n Number) *float64 {
	if !n.Valid || n.Value <= missingTemperature {
		return nil
	}
	return &n.Value
}

// nonNegative drops unreported values and the negative missing markers
// (-9, -99) used for quantities that cannot be below zero.
func nonNegative(n Number) *float64 {
	if !n.Valid || n.Value < 0 {
		return nil
	}
	return &n.Value
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
