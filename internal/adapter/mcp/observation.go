package mcp

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// defaultStation is Seoul.
const defaultStation = 108

type currentWeatherInput struct {
	Tm  string `json:"tm,omitempty" jsonschema:"observation time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	Stn *int   `json:"stn,omitempty" jsonschema:"station id; 108 is Seoul (default), 0 is all stations" validate:"omitempty,min=0,max=99999"`
}

type periodInput struct {
	Tm1 string `json:"tm1" jsonschema:"start time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
	Tm2 string `json:"tm2" jsonschema:"end time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
	Stn *int   `json:"stn,omitempty" jsonschema:"station id; 108 is Seoul (default), 0 is all stations" validate:"omitempty,min=0,max=99999"`
}

type dailyWeatherInput struct {
	Tm  string `json:"tm" jsonschema:"date in YYYYMMDD" validate:"required,kmadate"`
	Stn *int   `json:"stn,omitempty" jsonschema:"station id; 108 is Seoul (default), 0 is all stations" validate:"omitempty,min=0,max=99999"`
}

type elementInput struct {
	Tm1 string `json:"tm1" jsonschema:"start time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
	Tm2 string `json:"tm2" jsonschema:"end time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
	Stn int    `json:"stn" jsonschema:"station id" validate:"min=0,max=99999"`
}

type awsMinutelyInput struct {
	Tm1 string `json:"tm1,omitempty" jsonschema:"start time in YYYYMMDDHHmm; omit both times for the latest minute" validate:"omitempty,kmadatetime"`
	Tm2 string `json:"tm2,omitempty" jsonschema:"end time in YYYYMMDDHHmm" validate:"omitempty,kmadatetime"`
	Stn *int   `json:"stn,omitempty" jsonschema:"AWS station id; 0 is all stations (default)" validate:"omitempty,min=0,max=99999"`
}

type stationListInput struct {
	Network string `json:"network,omitempty" jsonschema:"asos (default) or aws" validate:"omitempty,oneof=asos aws"`
	Stn     *int   `json:"stn,omitempty" jsonschema:"station id; 0 lists every station (default)" validate:"omitempty,min=0,max=99999"`
}

type stationTimeInput struct {
	Tm  string `json:"tm,omitempty" jsonschema:"time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	Stn *int   `json:"stn,omitempty" jsonschema:"station id; 0 is all stations (default)" validate:"omitempty,min=0,max=99999"`
}

type snowDepthInput struct {
	Tm   string `json:"tm,omitempty" jsonschema:"time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	Kind string `json:"kind,omitempty" jsonschema:"tot (total, default), day (new snow today), 3hr or 24h" validate:"omitempty,oneof=tot day 3hr 24h"`
}

type buoyInput struct {
	Tm   string `json:"tm,omitempty" jsonschema:"time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	Buoy int    `json:"buoy,omitempty" jsonschema:"buoy id; 0 is all buoys" validate:"min=0,max=99999"`
}

type climateNormalsInput struct {
	Period     string `json:"period" jsonschema:"daily, tenday, monthly or annual" validate:"required,oneof=daily tenday monthly annual"`
	StartMonth int    `json:"start_month,omitempty" jsonschema:"first month (1-12); daily, tenday and monthly" validate:"omitempty,min=1,max=12"`
	StartDay   int    `json:"start_day,omitempty" jsonschema:"first day (1-31), or dekad (1-3) for tenday" validate:"omitempty,min=1,max=31"`
	EndMonth   int    `json:"end_month,omitempty" jsonschema:"last month (1-12)" validate:"omitempty,min=1,max=12"`
	EndDay     int    `json:"end_day,omitempty" jsonschema:"last day (1-31), or dekad (1-3) for tenday" validate:"omitempty,min=1,max=31"`
	Stn        int    `json:"stn,omitempty" jsonschema:"station id; 0 is all stations" validate:"min=0,max=99999"`
}

type upperAirInput struct {
	Tm     string `json:"tm,omitempty" jsonschema:"sounding time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	Stn    int    `json:"stn,omitempty" jsonschema:"radiosonde station id; 0 is all stations" validate:"min=0,max=99999"`
	Stable bool   `json:"stability,omitempty" jsonschema:"return stability indices instead of the sounding"`
}

func (s *Server) registerObservationTools() {
	asos := s.client.ASOS()

	addTool(s, "get_current_weather", "Get the current hourly ASOS observation with a Korean summary per station.",
		func(ctx context.Context, in currentWeatherInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			records, err := asos.HourlyData(ctx, tm, intOr(in.Stn, defaultStation))
			if err != nil {
				return "", err
			}
			return withSummaries(records, asosSummary)
		})

	addTool(s, "get_hourly_weather", "Get hourly ASOS observations for a time period.",
		func(ctx context.Context, in periodInput) (string, error) {
			tm1, tm2, err := parsePeriod(in.Tm1, in.Tm2)
			if err != nil {
				return "", err
			}
			records, err := asos.HourlyPeriod(ctx, tm1, tm2, intOr(in.Stn, defaultStation))
			if err != nil {
				return "", err
			}
			return withSummaries(records, asosSummary)
		})

	addTool(s, "get_daily_weather", "Get the daily ASOS summary for a date.",
		func(ctx context.Context, in dailyWeatherInput) (string, error) {
			tm, err := domain.ParseDate(in.Tm)
			if err != nil {
				return "", err
			}
			records, err := asos.DailyData(ctx, tm, intOr(in.Stn, defaultStation))
			if err != nil {
				return "", err
			}
			return withSummaries(records, asosSummary)
		})

	addTool(s, "get_temperature_data", "Get ASOS air temperature for a time period.",
		func(ctx context.Context, in elementInput) (string, error) {
			return s.element(ctx, in, "ta")
		})

	addTool(s, "get_precipitation_data", "Get ASOS precipitation for a time period.",
		func(ctx context.Context, in elementInput) (string, error) {
			return s.element(ctx, in, "rn")
		})

	addTool(s, "get_aws_minutely_weather", "Get one-minute AWS observations; without times returns the latest minute.",
		func(ctx context.Context, in awsMinutelyInput) (string, error) {
			q := kma.AWSQuery{Stn: intOr(in.Stn, 0)}
			var err error
			if q.Tm1, err = parseOptional(in.Tm1); err != nil {
				return "", err
			}
			if q.Tm2, err = parseOptional(in.Tm2); err != nil {
				return "", err
			}
			records, err := s.client.AWS().MinutelyData(ctx, q)
			if err != nil {
				return "", err
			}
			return withSummaries(records, awsSummary)
		})

	addTool(s, "get_station_list", "List ASOS or AWS station metadata.",
		func(ctx context.Context, in stationListInput) (string, error) {
			stations := s.client.Stations()
			lookup := stations.ASOS
			if in.Network == "aws" {
				lookup = stations.AWS
			}
			return jsonResult(lookup(ctx, intOr(in.Stn, 0)))
		})

	addTool(s, "get_dust_pm10", "Get hourly yellow dust (PM10) concentration.",
		func(ctx context.Context, in stationTimeInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Dust().HourlyData(ctx, tm, intOr(in.Stn, 0)))
		})

	addTool(s, "get_uv_index", "Get UV radiation (UVA and erythemal UVB) observations.",
		func(ctx context.Context, in stationTimeInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.UV().Observation(ctx, tm, intOr(in.Stn, 0)))
		})

	addTool(s, "get_snow_depth", "Get snow depth at all stations.",
		func(ctx context.Context, in snowDepthInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Snow().Depth(ctx, tm, in.Kind))
		})

	addTool(s, "get_buoy_data", "Get marine buoy observations.",
		func(ctx context.Context, in buoyInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Buoy().Data(ctx, tm, in.Buoy))
		})

	addTool(s, "get_climate_normals", "Get 30 year climate normals for a daily, ten-day, monthly or annual period.",
		func(ctx context.Context, in climateNormalsInput) (string, error) {
			r := kma.NormalsRange{
				StartMonth: in.StartMonth, StartDay: in.StartDay,
				EndMonth: in.EndMonth, EndDay: in.EndDay,
			}
			return jsonResult(s.client.Climate().NormalsByPeriod(ctx, in.Period, r, in.Stn))
		})

	addTool(s, "get_upper_air_data", "Get radiosonde soundings or stability indices.",
		func(ctx context.Context, in upperAirInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			if in.Stable {
				return jsonResult(s.client.Radiosonde().Stability(ctx, tm, in.Stn))
			}
			return jsonResult(s.client.Radiosonde().UpperAir(ctx, tm, in.Stn))
		})
}

func (s *Server) element(ctx context.Context, in elementInput, element string) (string, error) {
	tm1, tm2, err := parsePeriod(in.Tm1, in.Tm2)
	if err != nil {
		return "", err
	}
	return jsonResult(s.client.ASOS().ElementData(ctx, tm1, tm2, in.Stn, element))
}

func asosSummary(o domain.ASOSObservation) string { return o.Summary().String() }

func awsSummary(o domain.AWSObservation) string { return o.Summary().String() }

// jsonResult renders a client call's records, passing its error through.
func jsonResult[T any](records []T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return toJSON(records)
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func timeOrCurrentHour(s string) (time.Time, error) {
	if s == "" {
		return domain.CurrentHour(), nil
	}
	return domain.ParseDateTime(s)
}

// parseOptional parses s, returning the zero time when s is empty.
func parseOptional(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return domain.ParseDateTime(s)
}

func parsePeriod(s1, s2 string) (time.Time, time.Time, error) {
	tm1, err := domain.ParseDateTime(s1)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	tm2, err := domain.ParseDateTime(s2)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if tm2.Before(tm1) {
		return time.Time{}, time.Time{}, &kma.ValidationError{Param: "tm2", Reason: "must not be before tm1"}
	}
	return tm1, tm2, nil
}
