package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// ForecastClient queries forecast products across the URL, CGI, OpenAPI and
// hub roots. Image and grid file products return raw bytes.
type ForecastClient struct{ c *Client }

// Forecast returns the forecast client.
func (c *Client) Forecast() ForecastClient { return ForecastClient{c} }

// PageQuery selects a page of an OpenAPI product. Zero values take the catalog defaults.
type PageQuery struct {
	PageNo    int
	NumOfRows int
}

func (p Params) setPage(pg PageQuery) Params {
	if pg.PageNo > 0 {
		p["pageNo"] = pg.PageNo
	}
	if pg.NumOfRows > 0 {
		p["numOfRows"] = pg.NumOfRows
	}
	return p
}

// merge copies extra over p. Raw products take display options this way.
func (p Params) merge(extra Params) Params {
	for k, v := range extra {
		p[k] = v
	}
	return p
}

// Short range regional forecasts.

// ShortQuery filters the short range regional products. All fields are optional.
type ShortQuery struct {
	Stn    *int
	Region string
	Tmfc   time.Time // issue time
	Tmfc1  time.Time
	Tmfc2  time.Time
	Tmef1  time.Time // effective time range
	Tmef2  time.Time
}

func (q ShortQuery) params() Params {
	return Params{}.
		setInt("stn", q.Stn).
		setString("reg", q.Region).
		setTime("tmfc", q.Tmfc).
		setTime("tmfc1", q.Tmfc1).
		setTime("tmfc2", q.Tmfc2).
		setTime("tmef1", q.Tmef1).
		setTime("tmef2", q.Tmef2)
}

// ShortRegion returns the short range forecast regions.
func (f ForecastClient) ShortRegion(ctx context.Context, q ShortQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.short_region", q.params())
}

// ShortOverview returns the short range forecast overview text.
func (f ForecastClient) ShortOverview(ctx context.Context, q ShortQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.short_overview", q.params())
}

// ShortLand returns short range land forecasts.
func (f ForecastClient) ShortLand(ctx context.Context, q ShortQuery) ([]domain.ForecastData, error) {
	return fetch[domain.ForecastData](ctx, f.c, "forecast.short_land", q.params())
}

// ShortLandV2 returns short range land forecasts from the newer product.
func (f ForecastClient) ShortLandV2(ctx context.Context, q ShortQuery) ([]domain.ForecastData, error) {
	return fetch[domain.ForecastData](ctx, f.c, "forecast.short_land_v2", q.params())
}

// ShortSea returns short range sea forecasts.
func (f ForecastClient) ShortSea(ctx context.Context, q ShortQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.short_sea", q.params())
}

// Village forecast grids.

// GridQuery selects a village grid. Times are passed through as the caller
// wrote them since the grid services accept several layouts.
type GridQuery struct {
	Tmfc string
	Tmef string
	Vars string
}

func (q GridQuery) params() Params {
	return Params{}.setString("tmfc", q.Tmfc).setString("tmef", q.Tmef).setString("vars", q.Vars)
}

// VillageShortGrid returns the short range village forecast grid.
func (f ForecastClient) VillageShortGrid(ctx context.Context, q GridQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.village_short_grid", q.params())
}

// VillageVeryShortGrid returns the very short range village forecast grid.
func (f ForecastClient) VillageVeryShortGrid(ctx context.Context, q GridQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.village_very_short_grid", q.params())
}

// VillageObservationGrid ignores q.Tmef.
func (f ForecastClient) VillageObservationGrid(ctx context.Context, q GridQuery) ([]domain.Record, error) {
	q.Tmef = ""
	return fetch[domain.Record](ctx, f.c, "forecast.village_observation_grid", q.params())
}

// GridToCoords converts a forecast grid point to longitude and latitude.
func (f ForecastClient) GridToCoords(ctx context.Context, x, y int) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.grid_to_coords", Params{"x": x, "y": y})
}

// CoordsToGrid converts latitude and longitude to a forecast grid point.
func (f ForecastClient) CoordsToGrid(ctx context.Context, lat, lon float64) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.coords_to_grid", Params{"lat": lat, "lon": lon})
}

// Village forecast messages and values (OpenAPI).

// WeatherSituation returns the forecaster's situation summary for stnID.
func (f ForecastClient) WeatherSituation(ctx context.Context, stnID string, pg PageQuery) ([]domain.Record, error) {
	p := Params{}.setString("stnId", stnID).setPage(pg)
	return fetch[domain.Record](ctx, f.c, "forecast.weather_situation", p)
}

// LandMessage returns the land forecast message for region regID.
func (f ForecastClient) LandMessage(ctx context.Context, regID string, pg PageQuery) ([]domain.Record, error) {
	p := Params{}.setString("regId", regID).setPage(pg)
	return fetch[domain.Record](ctx, f.c, "forecast.land_message", p)
}

// SeaMessage returns the sea forecast message for region regID.
func (f ForecastClient) SeaMessage(ctx context.Context, regID string, pg PageQuery) ([]domain.Record, error) {
	p := Params{}.setString("regId", regID).setPage(pg)
	return fetch[domain.Record](ctx, f.c, "forecast.sea_message", p)
}

// VillageQuery selects a village forecast run at grid point (Nx, Ny).
// Base is the run time; its date and HHmm become base_date and base_time.
type VillageQuery struct {
	Base time.Time
	Nx   int
	Ny   int
	PageQuery
}

func (q VillageQuery) params() Params {
	p := Params{"nx": q.Nx, "ny": q.Ny}.setDate("base_date", q.Base).setPage(q.PageQuery)
	if !q.Base.IsZero() {
		p["base_time"] = q.Base.Format("1504")
	}
	return p
}

// UltraShortObservation returns the ultra short range nowcast at the grid point.
func (f ForecastClient) UltraShortObservation(ctx context.Context, q VillageQuery) ([]domain.VillageForecastItem, error) {
	return fetch[domain.VillageForecastItem](ctx, f.c, "forecast.ultra_short_observation", q.params())
}

// UltraShortForecast returns the ultra short range forecast at the grid point.
func (f ForecastClient) UltraShortForecast(ctx context.Context, q VillageQuery) ([]domain.VillageForecastItem, error) {
	return fetch[domain.VillageForecastItem](ctx, f.c, "forecast.ultra_short_forecast", q.params())
}

// Village returns the short range village forecast at the grid point.
func (f ForecastClient) Village(ctx context.Context, q VillageQuery) ([]domain.VillageForecastItem, error) {
	return fetch[domain.VillageForecastItem](ctx, f.c, "forecast.village", q.params())
}

// Version returns the latest version of a forecast type: ODAM, VSRT or SHRT.
func (f ForecastClient) Version(ctx context.Context, forecastType string, base time.Time) ([]domain.Record, error) {
	p := Params{"ftype": forecastType}.setTime("basedatetime", base)
	return fetch[domain.Record](ctx, f.c, "forecast.version", p)
}

// Distribution maps and grid files.

// MapQuery selects a distribution map. Options override display defaults
// such as size, map and zoom_level.
type MapQuery struct {
	Data0   string
	Data1   string
	Issued  time.Time
	Valid   time.Time
	Options Params
}

func (q MapQuery) params() Params {
	p := Params{}.
		setString("data0", q.Data0).
		setString("data1", q.Data1).
		setTime("tm_fc", q.Issued).
		setTime("tm_ef", q.Valid)
	return p.merge(q.Options)
}

// ShortDistributionMap returns the short range distribution map image.
func (f ForecastClient) ShortDistributionMap(ctx context.Context, q MapQuery) ([]byte, error) {
	return f.c.CallRaw(ctx, "forecast.short_distribution_map", q.params())
}

// VeryShortDistributionMap returns the very short range distribution map image.
func (f ForecastClient) VeryShortDistributionMap(ctx context.Context, q MapQuery) ([]byte, error) {
	return f.c.CallRaw(ctx, "forecast.very_short_distribution_map", q.params())
}

// GridLatLon returns the coordinates of every grid point, as text (mode DT)
// or NetCDF (mode NC). An empty mode means DT.
func (f ForecastClient) GridLatLon(ctx context.Context, mode string) ([]byte, error) {
	return f.c.CallRaw(ctx, "forecast.grid_latlon", Params{}.setString("mode", mode))
}

// Medium range forecasts.

// MediumRegion returns the medium range forecast regions.
func (f ForecastClient) MediumRegion(ctx context.Context) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.medium_region", Params{})
}

// MediumQuery filters the medium range products. Both fields are optional.
type MediumQuery struct {
	Stn  *int
	Tmfc time.Time
}

func (q MediumQuery) params() Params {
	return Params{}.setInt("stn", q.Stn).setTime("tmfc", q.Tmfc)
}

// MediumOverview returns the medium range forecast overview text.
func (f ForecastClient) MediumOverview(ctx context.Context, q MediumQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.medium_overview", q.params())
}

// MediumLand returns medium range land forecasts.
func (f ForecastClient) MediumLand(ctx context.Context, q MediumQuery) ([]domain.ForecastData, error) {
	return fetch[domain.ForecastData](ctx, f.c, "forecast.medium_land", q.params())
}

// MediumTemperature returns medium range temperature forecasts.
func (f ForecastClient) MediumTemperature(ctx context.Context, q MediumQuery) ([]domain.ForecastData, error) {
	return fetch[domain.ForecastData](ctx, f.c, "forecast.medium_temperature", q.params())
}

// MediumSea returns medium range sea forecasts.
func (f ForecastClient) MediumSea(ctx context.Context, q MediumQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.medium_sea", q.params())
}

// Mid term forecasts (OpenAPI). Issue times are 0600 or 1800 KST.

// MidSea returns the mid term sea forecast for regID issued at issued.
func (f ForecastClient) MidSea(ctx context.Context, regID string, issued time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.mid_sea", Params{"regId": regID}.setTime("tmFc", issued))
}

// MidTemperature returns the mid term temperature forecast for regID.
func (f ForecastClient) MidTemperature(ctx context.Context, regID string, issued time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.mid_temperature", Params{"regId": regID}.setTime("tmFc", issued))
}

// MidLand returns the mid term land forecast for regID.
func (f ForecastClient) MidLand(ctx context.Context, regID string, issued time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.mid_land", Params{"regId": regID}.setTime("tmFc", issued))
}

// MidOutlook returns the mid term outlook text for stnID.
func (f ForecastClient) MidOutlook(ctx context.Context, stnID string, issued time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.mid_outlook", Params{"stnId": stnID}.setTime("tmFc", issued))
}

// Warnings and reports.

// WarningRegion returns the warning regions.
func (f ForecastClient) WarningRegion(ctx context.Context) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.warning_region", Params{})
}

// WarningData returns warnings in effect at tm. A nil stn means all stations.
func (f ForecastClient) WarningData(ctx context.Context, stn *int, tm time.Time) ([]domain.Record, error) {
	p := Params{}.setInt("stn", stn).setTime("tm", tm)
	return fetch[domain.Record](ctx, f.c, "forecast.warning_data", p)
}

// WeatherInformation returns weather information bulletins issued between tmfc1 and tmfc2.
func (f ForecastClient) WeatherInformation(ctx context.Context, tmfc1, tmfc2 time.Time) ([]domain.Record, error) {
	p := Params{}.setTime("tmfc1", tmfc1).setTime("tmfc2", tmfc2)
	return fetch[domain.Record](ctx, f.c, "forecast.weather_information", p)
}

// WeatherCommentary returns forecaster commentary issued between tmfc1 and tmfc2.
func (f ForecastClient) WeatherCommentary(ctx context.Context, tmfc1, tmfc2 time.Time) ([]domain.Record, error) {
	p := Params{}.setTime("tmfc1", tmfc1).setTime("tmfc2", tmfc2)
	return fetch[domain.Record](ctx, f.c, "forecast.weather_commentary", p)
}

// WarningStatus returns the warning status issued at tmfc.
func (f ForecastClient) WarningStatus(ctx context.Context, tmfc time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.warning_status", Params{}.setTime("tmfc", tmfc))
}

// WarningStatusNew is WarningStatus from the revised warning product.
func (f ForecastClient) WarningStatusNew(ctx context.Context, tmfc time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.warning_status_new", Params{}.setTime("tmfc", tmfc))
}

// WarningImage returns the warning map image at tm. A zero tm means the latest map.
func (f ForecastClient) WarningImage(ctx context.Context, tm time.Time, options Params) ([]byte, error) {
	return f.c.CallRaw(ctx, "forecast.warning_image", Params{}.setTime("tm", tm).merge(options))
}

// Impact forecasts.

// ImpactQuery selects an impact forecast. RiskType is a hazard code such as "hw" (heat wave).
type ImpactQuery struct {
	Tmfc     time.Time
	Tmef     time.Time
	RiskType string
}

func (q ImpactQuery) params() Params {
	return Params{}.setTime("tmfc", q.Tmfc).setTime("tmef", q.Tmef).setString("risk_type", q.RiskType)
}

// ImpactStatus returns the impact forecasts currently issued.
func (f ForecastClient) ImpactStatus(ctx context.Context) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.impact_status", Params{})
}

// ImpactZoneCount returns the number of zones at each impact level.
func (f ForecastClient) ImpactZoneCount(ctx context.Context, q ImpactQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.impact_zone_count", q.params())
}

// ImpactDistributionMap returns the impact forecast map image.
func (f ForecastClient) ImpactDistributionMap(ctx context.Context, q ImpactQuery, options Params) ([]byte, error) {
	return f.c.CallRaw(ctx, "forecast.impact_distribution_map", q.params().merge(options))
}

// Zone codes.

// ForecastZones returns the forecast zone codes.
func (f ForecastClient) ForecastZones(ctx context.Context, pg PageQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.forecast_zones", Params{}.setPage(pg))
}

// WarningZones returns the warning zone codes.
func (f ForecastClient) WarningZones(ctx context.Context, pg PageQuery) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.warning_zones", Params{}.setPage(pg))
}

// AWSWarningZones maps AWS stations to warning zones.
func (f ForecastClient) AWSWarningZones(ctx context.Context) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, f.c, "forecast.aws_warning_zones", Params{})
}
