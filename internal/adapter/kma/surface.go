package kma

import (
	"context"
	"fmt"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// NKClient queries observations from North Korean stations.
type NKClient struct{ c *Client }

// NK returns the North Korea observation client.
func (c *Client) NK() NKClient { return NKClient{c} }

// HourlyData returns North Korean hourly observations at tm.
func (n NKClient) HourlyData(ctx context.Context, tm time.Time, stn int) ([]domain.NKObservation, error) {
	return fetch[domain.NKObservation](ctx, n.c, "nk.hourly", Params{"stn": stn}.setTime("tm", tm))
}

// HourlyPeriod returns North Korean hourly observations between tm1 and tm2.
func (n NKClient) HourlyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.NKObservation, error) {
	p := Params{"stn": stn}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.NKObservation](ctx, n.c, "nk.hourly_period", p)
}

// DailyData returns North Korean daily summaries for the day of tm.
func (n NKClient) DailyData(ctx context.Context, tm time.Time, stn int) ([]domain.NKObservation, error) {
	return fetch[domain.NKObservation](ctx, n.c, "nk.daily", Params{"stn": stn}.setDate("tm", tm))
}

// DailyPeriod returns North Korean daily summaries between tm1 and tm2.
func (n NKClient) DailyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.NKObservation, error) {
	p := Params{"stn": stn}.setDate("tm1", tm1).setDate("tm2", tm2)
	return fetch[domain.NKObservation](ctx, n.c, "nk.daily_period", p)
}

// DustClient queries yellow dust (PM10) concentrations.
type DustClient struct{ c *Client }

// Dust returns the PM10 client.
func (c *Client) Dust() DustClient { return DustClient{c} }

// HourlyData returns hourly PM10 concentrations at tm.
func (d DustClient) HourlyData(ctx context.Context, tm time.Time, stn int) ([]domain.DustObservation, error) {
	return fetch[domain.DustObservation](ctx, d.c, "dust.hourly", Params{"stn": stn}.setTime("tm", tm))
}

// HourlyPeriod returns hourly PM10 concentrations between tm1 and tm2.
func (d DustClient) HourlyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.DustObservation, error) {
	p := Params{"stn": stn}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.DustObservation](ctx, d.c, "dust.hourly_period", p)
}

// DailyData returns daily PM10 averages for the day of tm.
func (d DustClient) DailyData(ctx context.Context, tm time.Time, stn int) ([]domain.DustObservation, error) {
	return fetch[domain.DustObservation](ctx, d.c, "dust.daily", Params{"stn": stn}.setDate("tm", tm))
}

// DailyPeriod returns daily PM10 averages between tm1 and tm2.
func (d DustClient) DailyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.DustObservation, error) {
	p := Params{"stn": stn}.setDate("tm1", tm1).setDate("tm2", tm2)
	return fetch[domain.DustObservation](ctx, d.c, "dust.daily_period", p)
}

// UVClient queries ultraviolet radiation.
type UVClient struct{ c *Client }

// UV returns the UV client.
func (c *Client) UV() UVClient { return UVClient{c} }

// Observation returns UVA and erythemal UVB readings at tm.
func (u UVClient) Observation(ctx context.Context, tm time.Time, stn int) ([]domain.UVObservation, error) {
	return fetch[domain.UVObservation](ctx, u.c, "uv.observation", Params{"stn": stn}.setTime("tm", tm))
}

// The legacy UV index products are not documented upstream. These methods
// fail with a NotSupportedError naming Observation as the replacement.

// HourlyData is not supported upstream; use Observation.
func (u UVClient) HourlyData(ctx context.Context, tm time.Time, stn int) ([]domain.UVObservation, error) {
	return fetch[domain.UVObservation](ctx, u.c, "uv.hourly", Params{"stn": stn}.setTime("tm", tm))
}

// HourlyPeriod is not supported upstream; use Observation.
func (u UVClient) HourlyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.UVObservation, error) {
	p := Params{"stn": stn}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.UVObservation](ctx, u.c, "uv.hourly_period", p)
}

// DailyData is not supported upstream; use Observation.
func (u UVClient) DailyData(ctx context.Context, tm time.Time, stn int) ([]domain.UVObservation, error) {
	return fetch[domain.UVObservation](ctx, u.c, "uv.daily", Params{"stn": stn}.setDate("tm", tm))
}

// DailyPeriod is not supported upstream; use Observation.
func (u UVClient) DailyPeriod(ctx context.Context, tm1, tm2 time.Time, stn int) ([]domain.UVObservation, error) {
	p := Params{"stn": stn}.setDate("tm1", tm1).setDate("tm2", tm2)
	return fetch[domain.UVObservation](ctx, u.c, "uv.daily_period", p)
}

// SnowClient queries snow depth.
type SnowClient struct{ c *Client }

// Snow returns the snow client.
func (c *Client) Snow() SnowClient { return SnowClient{c} }

// Snow depth kinds accepted by Depth and MaxDepth.
const (
	SnowTotal = "tot"
	SnowDay   = "day"
	Snow3h    = "3hr"
	Snow24h   = "24h"
)

// Depth returns snow depth of the given kind at tm. An empty kind means SnowTotal.
func (s SnowClient) Depth(ctx context.Context, tm time.Time, kind string) ([]domain.SnowObservation, error) {
	p := Params{}.setTime("tm", tm).setString("sd", kind)
	return fetch[domain.SnowObservation](ctx, s.c, "snow.depth", p)
}

// Period returns snow depth between start and end.
func (s SnowClient) Period(ctx context.Context, start, end time.Time) ([]domain.SnowObservation, error) {
	p := Params{}.setTime("tm_st", start).setTime("tm", end)
	return fetch[domain.SnowObservation](ctx, s.c, "snow.period", p)
}

// MaxDepth returns the maximum daily snow depth between the dates of start and end.
func (s SnowClient) MaxDepth(ctx context.Context, start, end time.Time, stn int, kind string) ([]domain.SnowObservation, error) {
	p := Params{"stn": stn}.setDate("tm_st", start).setDate("tm", end).setString("sd", kind)
	return fetch[domain.SnowObservation](ctx, s.c, "snow.max_depth", p)
}

// SeasonClient queries seasonal phenomena such as first frost and blossoming.
type SeasonClient struct{ c *Client }

// Season returns the seasonal observation client.
func (c *Client) Season() SeasonClient { return SeasonClient{c} }

// Observation returns the seasonal phenomena observed in year.
func (s SeasonClient) Observation(ctx context.Context, year, stn int) ([]domain.SeasonObservation, error) {
	return fetch[domain.SeasonObservation](ctx, s.c, "season.observation", Params{"year": year, "stn": stn})
}

// Period returns the seasonal phenomena observed from year1 to year2.
func (s SeasonClient) Period(ctx context.Context, year1, year2, stn int) ([]domain.SeasonObservation, error) {
	p := Params{"year1": year1, "year2": year2, "stn": stn}
	return fetch[domain.SeasonObservation](ctx, s.c, "season.period", p)
}

// StationClient lists station metadata.
type StationClient struct{ c *Client }

// Stations returns the station metadata client.
func (c *Client) Stations() StationClient { return StationClient{c} }

// ASOS lists ASOS stations. stn 0 lists all of them.
func (s StationClient) ASOS(ctx context.Context, stn int) ([]domain.StationInfo, error) {
	return fetch[domain.StationInfo](ctx, s.c, "station.asos", Params{"stn": stn})
}

// AWS lists AWS stations. stn 0 lists all of them.
func (s StationClient) AWS(ctx context.Context, stn int) ([]domain.StationInfo, error) {
	return fetch[domain.StationInfo](ctx, s.c, "station.aws", Params{"stn": stn})
}

// ClimateClient queries 30 year climate normals.
type ClimateClient struct{ c *Client }

// Climate returns the climate normals client.
func (c *Client) Climate() ClimateClient { return ClimateClient{c} }

// Normal periods accepted by NormalsByPeriod.
const (
	PeriodDaily   = "daily"
	PeriodTenDay  = "tenday"
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// Daily returns daily normals from startMonth/startDay to endMonth/endDay.
func (cl ClimateClient) Daily(ctx context.Context, startMonth, startDay, endMonth, endDay, stn int) ([]domain.ClimateNormal, error) {
	p := Params{
		"mm1": pad2(startMonth), "dd1": pad2(startDay),
		"mm2": pad2(endMonth), "dd2": pad2(endDay),
		"stn": stn,
	}
	return fetch[domain.ClimateNormal](ctx, cl.c, "climate.daily", p)
}

// TenDay returns dekad normals. startPeriod and endPeriod are 1 to 3 within the month.
func (cl ClimateClient) TenDay(ctx context.Context, startMonth, startPeriod, endMonth, endPeriod, stn int) ([]domain.ClimateNormal, error) {
	p := Params{
		"mm1": pad2(startMonth), "dd1": fmt.Sprint(startPeriod),
		"mm2": pad2(endMonth), "dd2": fmt.Sprint(endPeriod),
		"stn": stn,
	}
	return fetch[domain.ClimateNormal](ctx, cl.c, "climate.tenday", p)
}

// Monthly returns monthly normals from startMonth to endMonth.
func (cl ClimateClient) Monthly(ctx context.Context, startMonth, endMonth, stn int) ([]domain.ClimateNormal, error) {
	p := Params{"mm1": pad2(startMonth), "mm2": pad2(endMonth), "stn": stn}
	return fetch[domain.ClimateNormal](ctx, cl.c, "climate.monthly", p)
}

// Annual returns the annual normals.
func (cl ClimateClient) Annual(ctx context.Context, stn int) ([]domain.ClimateNormal, error) {
	return fetch[domain.ClimateNormal](ctx, cl.c, "climate.annual", Params{"stn": stn})
}

// NormalsRange bounds a NormalsByPeriod query. Fields unused by the period are ignored.
type NormalsRange struct {
	StartMonth, StartDay int
	EndMonth, EndDay     int
}

// NormalsByPeriod dispatches to Daily, TenDay, Monthly or Annual.
func (cl ClimateClient) NormalsByPeriod(ctx context.Context, period string, r NormalsRange, stn int) ([]domain.ClimateNormal, error) {
	switch period {
	case PeriodDaily, PeriodTenDay:
		if r.StartMonth == 0 || r.StartDay == 0 || r.EndMonth == 0 || r.EndDay == 0 {
			return nil, &ValidationError{Param: "period", Reason: period + " normals need start and end month and day"}
		}
		if period == PeriodDaily {
			return cl.Daily(ctx, r.StartMonth, r.StartDay, r.EndMonth, r.EndDay, stn)
		}
		return cl.TenDay(ctx, r.StartMonth, r.StartDay, r.EndMonth, r.EndDay, stn)
	case PeriodMonthly:
		if r.StartMonth == 0 || r.EndMonth == 0 {
			return nil, &ValidationError{Param: "period", Reason: "monthly normals need start and end month"}
		}
		return cl.Monthly(ctx, r.StartMonth, r.EndMonth, stn)
	case PeriodAnnual:
		return cl.Annual(ctx, stn)
	default:
		return nil, &ValidationError{Param: "period", Reason: fmt.Sprintf("want daily, tenday, monthly or annual, got %q", period)}
	}
}

func pad2(n int) string { return fmt.Sprintf("%02d", n) }
