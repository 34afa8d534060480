package domain

import (
	"math"
	"time"
)

// Village forecast grid: Lambert conformal conic projection used by the
// digital forecast (DFS) services, 5km cells.
const (
	earthRadiusKm = 6371.00877
	gridKm        = 5.0
	stdLat1       = 30.0
	stdLat2       = 60.0
	originLon     = 126.0
	originLat     = 38.0
	originX       = 43
	originY       = 136
)

// LatLonToGrid converts WGS84 coordinates to village forecast grid indexes
// (nx, ny). Seoul City Hall (37.5665, 126.9780) maps to (60, 127).
func LatLonToGrid(lat, lon float64) (nx, ny int) {
	const degToRad = math.Pi / 180

	re := earthRadiusKm / gridKm
	slat1 := stdLat1 * degToRad
	slat2 := stdLat2 * degToRad
	olon := originLon * degToRad
	olat := originLat * degToRad

	sn := math.Tan(math.Pi*0.25+slat2*0.5) / math.Tan(math.Pi*0.25+slat1*0.5)
	sn = math.Log(math.Cos(slat1)/math.Cos(slat2)) / math.Log(sn)
	sf := math.Pow(math.Tan(math.Pi*0.25+slat1*0.5), sn) * math.Cos(slat1) / sn
	ro := re * sf / math.Pow(math.Tan(math.Pi*0.25+olat*0.5), sn)

	ra := re * sf / math.Pow(math.Tan(math.Pi*0.25+lat*degToRad*0.5), sn)
	theta := lon*degToRad - olon
	if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	if theta < -math.Pi {
		theta += 2 * math.Pi
	}
	theta *= sn

	nx = int(math.Floor(ra*math.Sin(theta) + originX + 0.5))
	ny = int(math.Floor(ro - ra*math.Cos(theta) + originY + 0.5))
	return nx, ny
}

// Village forecasts are issued eight times a day and published about ten
// minutes after the base hour.
var villageBaseHours = []int{2, 5, 8, 11, 14, 17, 20, 23}

const villagePublishDelay = 10 * time.Minute

// LatestVillageBase returns the most recent village forecast run that is
// published at t. Before 02:10 it is 23:00 of the previous day.
func LatestVillageBase(t time.Time) time.Time {
	t = t.In(KST)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, KST)
	for i := len(villageBaseHours) - 1; i >= 0; i-- {
		base := day.Add(time.Duration(villageBaseHours[i]) * time.Hour)
		if !t.Before(base.Add(villagePublishDelay)) {
			return base
		}
	}
	return day.Add(-time.Hour)
}
