package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// EarthquakeClient queries earthquake bulletins.
type EarthquakeClient struct{ c *Client }

// Earthquake returns the earthquake client.
func (c *Client) Earthquake() EarthquakeClient { return EarthquakeClient{c} }

// Recent returns earthquakes of the ten days before tm. A zero tm means now.
func (e EarthquakeClient) Recent(ctx context.Context, tm time.Time) ([]domain.EarthquakeData, error) {
	if tm.IsZero() {
		tm = domain.Now()
	}
	return fetch[domain.EarthquakeData](ctx, e.c, "earthquake.recent", Params{}.setTime("tm", tm))
}

// List returns earthquakes between tm1 and tm2.
func (e EarthquakeClient) List(ctx context.Context, tm1, tm2 time.Time) ([]domain.EarthquakeData, error) {
	p := Params{}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.EarthquakeData](ctx, e.c, "earthquake.list", p)
}

// TyphoonClient queries typhoon tracks.
type TyphoonClient struct{ c *Client }

// Typhoon returns the typhoon client.
func (c *Client) Typhoon() TyphoonClient { return TyphoonClient{c} }

// Current returns the typhoons active now.
func (t TyphoonClient) Current(ctx context.Context) ([]domain.TyphoonInfo, error) {
	return fetch[domain.TyphoonInfo](ctx, t.c, "typhoon.current", Params{})
}

// Details returns the track of one typhoon.
func (t TyphoonClient) Details(ctx context.Context, typhoonID string) ([]domain.TyphoonInfo, error) {
	return fetch[domain.TyphoonInfo](ctx, t.c, "typhoon.details", Params{"typ_id": typhoonID})
}

// Forecast returns the forecast track of one typhoon.
func (t TyphoonClient) Forecast(ctx context.Context, typhoonID string) ([]domain.TyphoonInfo, error) {
	return fetch[domain.TyphoonInfo](ctx, t.c, "typhoon.forecast", Params{"typ_id": typhoonID})
}

// History returns the typhoons of year.
func (t TyphoonClient) History(ctx context.Context, year int) ([]domain.TyphoonInfo, error) {
	return fetch[domain.TyphoonInfo](ctx, t.c, "typhoon.history", Params{"year": year})
}

// WarningClient queries weather warnings and advisories.
type WarningClient struct{ c *Client }

// Warning returns the warning client.
func (c *Client) Warning() WarningClient { return WarningClient{c} }

// Current returns the weather warnings in effect.
func (w WarningClient) Current(ctx context.Context) ([]domain.WarningData, error) {
	return fetch[domain.WarningData](ctx, w.c, "warning.current", Params{})
}

// History returns warnings issued between tm1 and tm2.
func (w WarningClient) History(ctx context.Context, tm1, tm2 time.Time) ([]domain.WarningData, error) {
	p := Params{}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.WarningData](ctx, w.c, "warning.history", p)
}

// SpecialReport returns the special weather reports at tm.
func (w WarningClient) SpecialReport(ctx context.Context, tm time.Time) ([]domain.WarningData, error) {
	return fetch[domain.WarningData](ctx, w.c, "warning.special_report", Params{}.setTime("tm", tm))
}

// IntegratedClient queries integrated observation products.
type IntegratedClient struct{ c *Client }

// Integrated returns the integrated observation client.
func (c *Client) Integrated() IntegratedClient { return IntegratedClient{c} }

// Lightning returns lightning strikes between tm1 and tm2.
func (i IntegratedClient) Lightning(ctx context.Context, tm1, tm2 time.Time) ([]domain.LightningData, error) {
	p := Params{}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.LightningData](ctx, i.c, "integrated.lightning", p)
}

// WindProfiler returns wind profiler data. mode defaults to "L" (low mode).
func (i IntegratedClient) WindProfiler(ctx context.Context, tm time.Time, stn int, mode string) ([]domain.WindProfilerData, error) {
	p := Params{"stn": stn}.setTime("tm", tm).setString("mode", mode)
	return fetch[domain.WindProfilerData](ctx, i.c, "integrated.wind_profiler", p)
}
