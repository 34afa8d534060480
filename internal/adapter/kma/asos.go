package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// ASOSClient queries the Automated Synoptic Observing System.
type ASOSClient struct{ c *Client }

// ASOS returns the ASOS client.
func (c *Client) ASOS() ASOSClient { return ASOSClient{c} }

// HourlyData returns hourly observations at tm. stn 0 returns all stations.
func (a ASOSClient) HourlyData(ctx context.Context, tm time.Time, stn int) ([]domain.ASOSObservation, error) {
	p := Params{"stn": stn}.setTime("tm", tm)
	return fetch[domain.ASOSObservation](ctx, a.c, "asos.hourly", p)
}

// HourlyPeriod returns hourly observations between tm1 and tm2.
func (a ASOSClient) HourlyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.ASOSObservation, error) {
	p := Params{"stn": stn}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.ASOSObservation](ctx, a.c, "asos.hourly_period", p)
}

// DailyData returns the daily summary for the date of tm.
func (a ASOSClient) DailyData(ctx context.Context, tm time.Time, stn int) ([]domain.ASOSObservation, error) {
	p := Params{"stn": stn}.setDate("tm", tm)
	return fetch[domain.ASOSObservation](ctx, a.c, "asos.daily", p)
}

// DailyPeriod returns daily summaries between the dates of tm1 and tm2.
func (a ASOSClient) DailyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.ASOSObservation, error) {
	p := Params{"stn": stn}.setDate("tm1", tm1).setDate("tm2", tm2)
	return fetch[domain.ASOSObservation](ctx, a.c, "asos.daily_period", p)
}

// ElementData returns a single element (e.g. "ta", "rn", "ws", "hm") over a period.
func (a ASOSClient) ElementData(ctx context.Context, tm1, tm2 time.Time, stn int, element string) ([]domain.ASOSObservation, error) {
	p := Params{"stn": stn, "elm": element}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.ASOSObservation](ctx, a.c, "asos.element", p)
}
