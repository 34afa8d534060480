package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// RadiosondeClient queries upper air soundings.
type RadiosondeClient struct{ c *Client }

// Radiosonde returns the upper air client.
func (c *Client) Radiosonde() RadiosondeClient { return RadiosondeClient{c} }

// UpperAir returns the radiosonde profile launched at tm.
func (r RadiosondeClient) UpperAir(ctx context.Context, tm time.Time, stn int) ([]domain.RadiosondeData, error) {
	return fetch[domain.RadiosondeData](ctx, r.c, "radiosonde.upper_air", Params{"stn": stn}.setTime("tm", tm))
}

// Stability returns the stability indices of the sounding at tm.
func (r RadiosondeClient) Stability(ctx context.Context, tm time.Time, stn int) ([]domain.StabilityIndex, error) {
	return fetch[domain.StabilityIndex](ctx, r.c, "radiosonde.stability", Params{"stn": stn}.setTime("tm", tm))
}

// MaxAltitude returns the highest level reached by the sounding at tm.
func (r RadiosondeClient) MaxAltitude(ctx context.Context, tm time.Time, stn int) ([]domain.RadiosondeData, error) {
	return fetch[domain.RadiosondeData](ctx, r.c, "radiosonde.max_altitude", Params{"stn": stn}.setTime("tm", tm))
}

// RadarClient queries weather radar products.
type RadarClient struct{ c *Client }

// Radar returns the radar client.
func (c *Client) Radar() RadarClient { return RadarClient{c} }

// Image returns the radar image at tm. radarID defaults to "KWK" (composite).
func (r RadarClient) Image(ctx context.Context, tm time.Time, radarID string) ([]domain.RadarImage, error) {
	p := Params{}.setTime("tm", tm).setString("radar_id", radarID)
	return fetch[domain.RadarImage](ctx, r.c, "radar.image", p)
}

// ImageSequence returns the radar images between tm1 and tm2.
func (r RadarClient) ImageSequence(ctx context.Context, tm1, tm2 time.Time, radarID string) ([]domain.RadarImage, error) {
	p := Params{}.setTime("tm1", tm1).setTime("tm2", tm2).setString("radar_id", radarID)
	return fetch[domain.RadarImage](ctx, r.c, "radar.image_sequence", p)
}

// Reflectivity returns the reflectivity at lat, lon.
func (r RadarClient) Reflectivity(ctx context.Context, tm time.Time, lat, lon float64) ([]domain.RadarReflectivity, error) {
	p := Params{"lat": lat, "lon": lon}.setTime("tm", tm)
	return fetch[domain.RadarReflectivity](ctx, r.c, "radar.reflectivity", p)
}

// SatelliteClient queries GK2A satellite products. Its catalog entries use
// the longer satellite timeout.
type SatelliteClient struct{ c *Client }

// Satellite returns the satellite client.
func (c *Client) Satellite() SatelliteClient {
	return SatelliteClient{c}
}

// SatelliteQuery selects a satellite file listing. Empty fields take the
// catalog defaults (GK2A, L1B, FD, NetCDF).
type SatelliteQuery struct {
	Satellite string
	Vars      string
	Area      string
	Format    string
	Tm        time.Time
}

// FileList lists satellite files. Empty query fields take the catalog defaults.
func (s SatelliteClient) FileList(ctx context.Context, q SatelliteQuery) ([]domain.SatelliteFile, error) {
	p := Params{}.
		setString("sat", q.Satellite).
		setString("vars", q.Vars).
		setString("area", q.Area).
		setString("fmt", q.Format).
		setTime("tm", q.Tm)
	return fetch[domain.SatelliteFile](ctx, s.c, "satellite.file_list", p)
}

// Imagery returns image products for level, data type and area at tm.
func (s SatelliteClient) Imagery(ctx context.Context, level, data, area string, tm time.Time) ([]domain.SatelliteImagery, error) {
	p := Params{"lvl": level, "dat": data, "are": area}.setTime("tm", tm)
	return fetch[domain.SatelliteImagery](ctx, s.c, "satellite.imagery", p)
}

// GTSClient queries Global Telecommunication System reports.
type GTSClient struct{ c *Client }

// GTS returns the GTS client.
func (c *Client) GTS() GTSClient { return GTSClient{c} }

// Synop returns global SYNOP surface reports at tm.
func (g GTSClient) Synop(ctx context.Context, tm time.Time) ([]domain.SynopObservation, error) {
	return fetch[domain.SynopObservation](ctx, g.c, "gts.synop", Params{}.setTime("tm", tm))
}

// Ship returns ship reports at tm.
func (g GTSClient) Ship(ctx context.Context, tm time.Time) ([]domain.ShipObservation, error) {
	return fetch[domain.ShipObservation](ctx, g.c, "gts.ship", Params{}.setTime("tm", tm))
}

// Buoy returns drifting buoy reports at tm.
func (g GTSClient) Buoy(ctx context.Context, tm time.Time) ([]domain.ShipObservation, error) {
	return fetch[domain.ShipObservation](ctx, g.c, "gts.buoy", Params{}.setTime("tm", tm))
}

// Aircraft returns aircraft reports at tm.
func (g GTSClient) Aircraft(ctx context.Context, tm time.Time) ([]domain.AircraftReport, error) {
	return fetch[domain.AircraftReport](ctx, g.c, "gts.aircraft", Params{}.setTime("tm", tm))
}

// SurfaceChart returns surface analysis chart data at tm.
func (g GTSClient) SurfaceChart(ctx context.Context, tm time.Time) ([]domain.ChartData, error) {
	return fetch[domain.ChartData](ctx, g.c, "gts.surface_chart", Params{}.setTime("tm", tm))
}

// SynopChart returns SYNOP chart data at tm.
func (g GTSClient) SynopChart(ctx context.Context, tm time.Time) ([]domain.ChartData, error) {
	return fetch[domain.ChartData](ctx, g.c, "gts.synop_chart", Params{}.setTime("tm", tm))
}
