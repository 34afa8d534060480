package kma

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_CoversClientMethods(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	for _, name := range []string{
		"amos.airport",
		"amos.amdar",
		"asos.daily",
		"asos.daily_period",
		"asos.element",
		"asos.hourly",
		"asos.hourly_period",
		"aws.cloud",
		"aws.cloud_amount_10min",
		"aws.cloud_amount_range",
		"aws.land_surface_temperature",
		"aws.minutely",
		"awsoa.analysis",
		"awsoa.analysis_period",
		"buoy.data",
		"buoy.marine_all",
		"buoy.period",
		"climate.annual",
		"climate.daily",
		"climate.monthly",
		"climate.tenday",
		"dust.daily",
		"dust.daily_period",
		"dust.hourly",
		"dust.hourly_period",
		"earthquake.list",
		"earthquake.recent",
		"forecast.aws_warning_zones",
		"forecast.coords_to_grid",
		"forecast.forecast_zones",
		"forecast.grid_latlon",
		"forecast.grid_to_coords",
		"forecast.impact_distribution_map",
		"forecast.impact_status",
		"forecast.impact_zone_count",
		"forecast.land_message",
		"forecast.medium_land",
		"forecast.medium_overview",
		"forecast.medium_region",
		"forecast.medium_sea",
		"forecast.medium_temperature",
		"forecast.mid_land",
		"forecast.mid_outlook",
		"forecast.mid_sea",
		"forecast.mid_temperature",
		"forecast.sea_message",
		"forecast.short_distribution_map",
		"forecast.short_land",
		"forecast.short_land_v2",
		"forecast.short_overview",
		"forecast.short_region",
		"forecast.short_sea",
		"forecast.ultra_short_forecast",
		"forecast.ultra_short_observation",
		"forecast.version",
		"forecast.very_short_distribution_map",
		"forecast.village",
		"forecast.village_observation_grid",
		"forecast.village_short_grid",
		"forecast.village_very_short_grid",
		"forecast.warning_data",
		"forecast.warning_image",
		"forecast.warning_region",
		"forecast.warning_status",
		"forecast.warning_status_new",
		"forecast.warning_zones",
		"forecast.weather_commentary",
		"forecast.weather_information",
		"forecast.weather_situation",
		"gts.aircraft",
		"gts.buoy",
		"gts.ship",
		"gts.surface_chart",
		"gts.synop",
		"gts.synop_chart",
		"integrated.lightning",
		"integrated.wind_profiler",
		"nk.daily",
		"nk.daily_period",
		"nk.hourly",
		"nk.hourly_period",
		"radar.image",
		"radar.image_sequence",
		"radar.reflectivity",
		"radiosonde.max_altitude",
		"radiosonde.stability",
		"radiosonde.upper_air",
		"satellite.file_list",
		"satellite.imagery",
		"season.observation",
		"season.period",
		"snow.depth",
		"snow.max_depth",
		"snow.period",
		"station.asos",
		"station.aws",
		"typhoon.current",
		"typhoon.details",
		"typhoon.forecast",
		"typhoon.history",
		"uv.daily",
		"uv.daily_period",
		"uv.hourly",
		"uv.hourly_period",
		"uv.observation",
		"warning.current",
		"warning.history",
		"warning.special_report",
	} {
		_, ok := cat.Lookup(name)
		assert.True(t, ok, "catalog is missing %s", name)
	}
}

func TestDefaultCatalog_NamesSorted(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	names := cat.Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	assert.Len(t, cat.List(), len(names))
}

func TestDefaultCatalog_SharedParamLists(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	a, _ := cat.Lookup("forecast.ultra_short_observation")
	b, _ := cat.Lookup("forecast.village")
	if diff := cmp.Diff(a.Params, b.Params); diff != "" {
		t.Errorf("aliased params differ (-a +b):\n%s", diff)
	}
	assert.Equal(t, BaseOpenAPI, a.Base)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate": `
endpoints:
  - {name: a.b, path: x.php}
  - {name: a.b, path: y.php}
`,
		"missing name": `
endpoints:
  - {path: x.php}
`,
		"missing path": `
endpoints:
  - {name: a.b}
`,
		"unknown format": `
endpoints:
  - name: a.b
    path: x.php
    params:
      - {name: tm, format: epoch}
`,
		"unknown base": `
endpoints:
  - {name: a.b, path: x.php, base: ftp}
`,
		"unknown alternative": `
endpoints:
  - {name: a.b, unsupported: a.c}
`,
		"unknown field": `
endpoints:
  - {name: a.b, path: x.php, method: POST}
`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func testEndpoint() Endpoint {
	return Endpoint{
		Name:  "test.entry",
		Path:  "x.php",
		Fixed: map[string]string{"help": "1", "dataType": "JSON"},
		Params: []ParamSpec{
			{Name: "tm", Format: FormatDateTime, Required: true},
			{Name: "stn", Format: FormatInt, Default: "0"},
			{Name: "sd", Format: FormatString, Default: "tot", Values: []string{"tot", "day"}},
			{Name: "lat", Format: FormatFloat},
			{Name: "day", Format: FormatDate},
		},
	}
}

func TestEndpointResolve_MergeOrder(t *testing.T) {
	got, err := testEndpoint().Resolve(Params{"tm": "202501011200", "help": 0, "extra": "kept"})
	require.NoError(t, err)

	want := Params{
		"help":     0,
		"dataType": "JSON",
		"tm":       "202501011200",
		"stn":      "0",
		"sd":       "tot",
		"extra":    "kept",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpointResolve_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		param  string
	}{
		{"missing required", Params{}, "tm"},
		{"empty required", Params{"tm": ""}, "tm"},
		{"short datetime", Params{"tm": "2025010112"}, "tm"},
		{"bad int", Params{"tm": "202501011200", "stn": "seoul"}, "stn"},
		{"bad float", Params{"tm": "202501011200", "lat": "north"}, "lat"},
		{"bad date", Params{"tm": "202501011200", "day": "2025-01-01"}, "day"},
		{"bad enum", Params{"tm": "202501011200", "sd": "week"}, "sd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testEndpoint().Resolve(tt.params)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.param, vErr.Param)
		})
	}
}

func TestEndpointResolve_Unsupported(t *testing.T) {
	ep := Endpoint{Name: "uv.hourly", Unsupported: "uv.observation"}
	_, err := ep.Resolve(nil)
	require.ErrorIs(t, err, ErrNotSupported)

	var nsErr *NotSupportedError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, "uv.observation", nsErr.Alternative)
}

func TestCall_UnsupportedSendsNoRequest(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	for _, name := range []string{"uv.hourly", "uv.hourly_period", "uv.daily", "uv.daily_period"} {
		_, err := c.Call(context.Background(), name, Params{"tm": "202501011200"})
		assert.True(t, errors.Is(err, ErrNotSupported), name)
	}
	assert.Zero(t, rec.count())
}

func TestCall_ValidationSendsNoRequest(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Call(context.Background(), "asos.hourly", Params{"tm": "yesterday"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, rec.count())
}

func TestCall_UnknownEndpoint(t *testing.T) {
	c := newTestClient(t, newServer(t, &recorder{}))
	_, err := c.Call(context.Background(), "nope.nothing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.nothing")
}

func TestCall_RawEntryNeedsCallRaw(t *testing.T) {
	rec := &recorder{body: "PNG"}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Call(context.Background(), "forecast.grid_latlon", nil)
	require.Error(t, err)
	assert.Zero(t, rec.count())

	body, err := c.CallRaw(context.Background(), "forecast.grid_latlon", nil)
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(body))
	assert.Equal(t, "/hub/typ01/cgi-bin/dfs/nph-dfs_latlon_api", rec.last(t).URL.Path)
	assert.Equal(t, "DT", rec.query(t).Get("mode"))
	assert.Equal(t, "1", rec.query(t).Get("help"))
}

func TestParseBase(t *testing.T) {
	for _, b := range []Base{BaseURL, BaseCGI, BaseOpenAPI, BaseHub} {
		got, err := ParseBase(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	got, err := ParseBase("")
	require.NoError(t, err)
	assert.Equal(t, BaseURL, got)

	_, err = ParseBase("ftp")
	require.Error(t, err)
}

func TestEndpointResolve_EmptyValueUsesDefault(t *testing.T) {
	got, err := testEndpoint().Resolve(Params{"tm": "202501011200", "stn": "", "sd": ""})
	require.NoError(t, err)
	assert.Equal(t, "0", got["stn"])
	assert.Equal(t, "tot", got["sd"])

	cat, err := DefaultCatalog()
	require.NoError(t, err)
	ep, ok := cat.Lookup("satellite.file_list")
	require.True(t, ok)

	got, err = ep.Resolve(Params{"sat": ""})
	require.NoError(t, err)
	assert.Equal(t, "GK2A", got["sat"])
}

func TestCatalog_SatelliteEntriesUseLongTimeout(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	for _, name := range cat.Names() {
		ep, _ := cat.Lookup(name)
		assert.Equal(t, strings.HasPrefix(name, "satellite."), ep.LongTimeout, name)
	}
}
