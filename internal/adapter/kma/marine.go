package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// BuoyClient queries marine buoys.
type BuoyClient struct{ c *Client }

// Buoy returns the buoy client.
func (c *Client) Buoy() BuoyClient { return BuoyClient{c} }

// Data returns buoy observations at tm. buoy 0 returns all buoys.
func (b BuoyClient) Data(ctx context.Context, tm time.Time, buoy int) ([]domain.BuoyObservation, error) {
	return fetch[domain.BuoyObservation](ctx, b.c, "buoy.data", Params{"buoy": buoy}.setTime("tm", tm))
}

// Period returns buoy observations between tm1 and tm2.
func (b BuoyClient) Period(ctx context.Context, tm1, tm2 time.Time, buoy int) ([]domain.BuoyObservation, error) {
	p := Params{"buoy": buoy}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.BuoyObservation](ctx, b.c, "buoy.period", p)
}

// MarineAll returns observations from every marine platform at tm. Columns
// differ by platform, so rows are untyped.
func (b BuoyClient) MarineAll(ctx context.Context, tm time.Time) ([]domain.Record, error) {
	return fetch[domain.Record](ctx, b.c, "buoy.marine_all", Params{}.setTime("tm", tm))
}

// AMOSClient queries aviation observations.
type AMOSClient struct{ c *Client }

// AMOS returns the aviation client.
func (c *Client) AMOS() AMOSClient { return AMOSClient{c} }

// Airport returns aerodrome observations at tm over the preceding dtm minutes.
func (a AMOSClient) Airport(ctx context.Context, tm time.Time, dtm int) ([]domain.AMOSObservation, error) {
	p := Params{}.setTime("tm", tm)
	if dtm > 0 {
		p["dtm"] = dtm
	}
	return fetch[domain.AMOSObservation](ctx, a.c, "amos.airport", p)
}

// AMDAR returns aircraft reports between tm1 and tm2. st selects the report
// source and defaults to "E".
func (a AMOSClient) AMDAR(ctx context.Context, tm1, tm2 time.Time, st string) ([]domain.AMDARData, error) {
	p := Params{}.setTime("tm1", tm1).setTime("tm2", tm2).setString("st", st)
	return fetch[domain.AMDARData](ctx, a.c, "amos.amdar", p)
}
