package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// AWSClient queries the Automatic Weather Station network.
type AWSClient struct{ c *Client }

// AWS returns the AWS client.
func (c *Client) AWS() AWSClient { return AWSClient{c} }

// AWSQuery selects AWS minute data. Zero times are omitted, which makes
// upstream return the latest minute.
type AWSQuery struct {
	Tm   time.Time // land surface temperature only
	Tm1  time.Time
	Tm2  time.Time
	Stn  int
	Disp int
}

func (q AWSQuery) params() Params {
	return Params{"stn": q.Stn, "disp": q.Disp}.
		setTime("tm", q.Tm).
		setTime("tm1", q.Tm1).
		setTime("tm2", q.Tm2)
}

// CloudQuery extends AWSQuery with ceilometer sampling options.
type CloudQuery struct {
	AWSQuery
	Interval *int // itv, minutes
	SMS      *int // smoothing
	Range    *int // ca2/ca3 only
}

func (q CloudQuery) params() Params {
	p := Params{"stn": q.Stn, "disp": q.Disp}.
		setTime("tm1", q.Tm1).
		setTime("tm2", q.Tm2)
	return p.setInt("itv", q.Interval).setInt("sms", q.SMS).setInt("range", q.Range)
}

// MinutelyData returns one-minute observations.
func (a AWSClient) MinutelyData(ctx context.Context, q AWSQuery) ([]domain.AWSObservation, error) {
	q.Tm = time.Time{}
	return fetch[domain.AWSObservation](ctx, a.c, "aws.minutely", q.params())
}

// LandSurfaceTemperature returns ground surface temperature readings.
func (a AWSClient) LandSurfaceTemperature(ctx context.Context, q AWSQuery) ([]domain.AWSLandSurfaceTemperature, error) {
	return fetch[domain.AWSLandSurfaceTemperature](ctx, a.c, "aws.land_surface_temperature", q.params())
}

// CloudData returns ceilometer cloud base height and amount.
func (a AWSClient) CloudData(ctx context.Context, q CloudQuery) ([]domain.AWSCloudData, error) {
	q.Range = nil
	return fetch[domain.AWSCloudData](ctx, a.c, "aws.cloud", q.params())
}

// CloudAmount10Min returns ten minute cloud amount. Interval and Range default to 10.
func (a AWSClient) CloudAmount10Min(ctx context.Context, q CloudQuery) ([]domain.AWSCloudData, error) {
	q.SMS = nil
	return fetch[domain.AWSCloudData](ctx, a.c, "aws.cloud_amount_10min", q.params())
}

// CloudAmountRange returns cloud amount over a range. Interval and Range default to 10.
func (a AWSClient) CloudAmountRange(ctx context.Context, q CloudQuery) ([]domain.AWSCloudData, error) {
	q.SMS = nil
	return fetch[domain.AWSCloudData](ctx, a.c, "aws.cloud_amount_range", q.params())
}

// AWSOAClient queries the AWS objective analysis grid.
type AWSOAClient struct{ c *Client }

// AWSOA returns the AWS objective analysis client.
func (c *Client) AWSOA() AWSOAClient { return AWSOAClient{c} }

// Analysis returns the analysis at grid point (x, y) at tm.
func (a AWSOAClient) Analysis(ctx context.Context, tm time.Time, x, y float64) ([]domain.AWSOAData, error) {
	p := Params{"x": x, "y": y}.setTime("tm", tm)
	return fetch[domain.AWSOAData](ctx, a.c, "awsoa.analysis", p)
}

// AnalysisPeriod returns the analysis at grid point (x, y) between tm1 and tm2.
func (a AWSOAClient) AnalysisPeriod(ctx context.Context, tm1, tm2 time.Time, x, y float64) ([]domain.AWSOAData, error) {
	p := Params{"x": x, "y": y}.setTime("tm1", tm1).setTime("tm2", tm2)
	return fetch[domain.AWSOAData](ctx, a.c, "awsoa.analysis_period", p)
}
