package kma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

var testTime = time.Date(2025, 1, 1, 12, 0, 0, 0, domain.KST)

func TestASOS_HourlyData(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t, map[string]any{
		"tm": "202501011200", "stnId": "108", "stnNm": "서울",
		"ta": "15.5", "hm": 65, "wd": 45, "ws": 3.2, "rn": "",
	})}
	c := newTestClient(t, newServer(t, rec))

	got, err := c.ASOS().HourlyData(context.Background(), testTime, 108)
	require.NoError(t, err)

	want := []domain.ASOSObservation{{
		Tm: "202501011200", StnID: "108", StnNm: "서울",
		Ta: domain.NewNumber(15.5), Hm: domain.NewNumber(65), Wd: domain.NewNumber(45), Ws: domain.NewNumber(3.2),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HourlyData mismatch (-want +got):\n%s", diff)
	}

	q := rec.query(t)
	assert.Equal(t, "/url/kma_sfctm2.php", rec.last(t).URL.Path)
	assert.Equal(t, "202501011200", q.Get("tm"))
	assert.Equal(t, "108", q.Get("stn"))
	assert.Equal(t, "[서울] 기온: 15.5°C, 습도: 65%, 풍향: 북동, 풍속: 3.2m/s", got[0].Summary().String())
}

func TestASOS_DailyUsesDateFormat(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.ASOS().DailyPeriod(context.Background(), testTime, testTime.AddDate(0, 0, 7), 0)
	require.NoError(t, err)

	q := rec.query(t)
	assert.Equal(t, "/url/kma_sfcdd2.php", rec.last(t).URL.Path)
	assert.Equal(t, "20250101", q.Get("tm1"))
	assert.Equal(t, "20250108", q.Get("tm2"))
	assert.Equal(t, "0", q.Get("stn"))
}

func TestASOS_ElementData(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.ASOS().ElementData(context.Background(), testTime, testTime.Add(time.Hour), 108, "ta")
	require.NoError(t, err)
	assert.Equal(t, "ta", rec.query(t).Get("elm"))
}

func TestAWS_MinutelyLatestOmitsTimes(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.AWS().MinutelyData(context.Background(), AWSQuery{Stn: 108})
	require.NoError(t, err)

	q := rec.query(t)
	assert.Equal(t, "/cgi/nph-aws2_min", rec.last(t).URL.Path)
	assert.False(t, q.Has("tm1"))
	assert.False(t, q.Has("tm2"))
	assert.Equal(t, "1", q.Get("help"))
	assert.Equal(t, "0", q.Get("disp"))
}

func TestAWS_CloudAmountDefaults(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	itv := 30
	_, err := c.AWS().CloudAmount10Min(context.Background(), CloudQuery{Interval: &itv})
	require.NoError(t, err)

	q := rec.query(t)
	assert.Equal(t, "30", q.Get("itv"))
	assert.Equal(t, "10", q.Get("range"))
}

func TestClimate_PadsMonthAndDay(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Climate().Daily(context.Background(), 1, 5, 2, 28, 108)
	require.NoError(t, err)
	q := rec.query(t)
	assert.Equal(t, "01", q.Get("mm1"))
	assert.Equal(t, "05", q.Get("dd1"))
	assert.Equal(t, "02", q.Get("mm2"))
	assert.Equal(t, "28", q.Get("dd2"))

	_, err = c.Climate().TenDay(context.Background(), 3, 1, 3, 3, 108)
	require.NoError(t, err)
	q = rec.query(t)
	assert.Equal(t, "03", q.Get("mm1"))
	assert.Equal(t, "1", q.Get("dd1"))
	assert.Equal(t, "3", q.Get("dd2"))
}

func TestClimate_NormalsByPeriod(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))
	ctx := context.Background()

	_, err := c.Climate().NormalsByPeriod(ctx, PeriodAnnual, NormalsRange{}, 108)
	require.NoError(t, err)
	assert.Equal(t, "/url/kma_clm_year.php", rec.last(t).URL.Path)

	_, err = c.Climate().NormalsByPeriod(ctx, PeriodMonthly, NormalsRange{StartMonth: 6, EndMonth: 8}, 108)
	require.NoError(t, err)
	assert.Equal(t, "/url/kma_clm_month.php", rec.last(t).URL.Path)

	before := rec.count()
	for _, tt := range []struct {
		period string
		r      NormalsRange
	}{
		{PeriodDaily, NormalsRange{StartMonth: 1}},
		{PeriodMonthly, NormalsRange{}},
		{"weekly", NormalsRange{}},
	} {
		_, err := c.Climate().NormalsByPeriod(ctx, tt.period, tt.r, 108)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, tt.period)
	}
	assert.Equal(t, before, rec.count())
}

func TestEarthquake_RecentDefaultsToNow(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Earthquake().Recent(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "202503010930", rec.query(t).Get("tm"))
}

func TestUV_LegacyMethodsNotSupported(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))
	ctx := context.Background()

	calls := map[string]func() error{
		"HourlyData":   func() error { _, err := c.UV().HourlyData(ctx, testTime, 0); return err },
		"HourlyPeriod": func() error { _, err := c.UV().HourlyPeriod(ctx, testTime, testTime, 0); return err },
		"DailyData":    func() error { _, err := c.UV().DailyData(ctx, testTime, 0); return err },
		"DailyPeriod":  func() error { _, err := c.UV().DailyPeriod(ctx, testTime, testTime, 0); return err },
	}
	for name, call := range calls {
		err := call()
		require.True(t, errors.Is(err, ErrNotSupported), name)
		assert.Contains(t, err.Error(), "uv.observation")
	}
	assert.Zero(t, rec.count())

	_, err := c.UV().Observation(ctx, testTime, 0)
	require.NoError(t, err)
	assert.Equal(t, "/url/kma_sfctm_uv.php", rec.last(t).URL.Path)
}

func TestSnow_Depth(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t, map[string]any{"stnId": 90, "sd": "12.5"})}
	c := newTestClient(t, newServer(t, rec))

	got, err := c.Snow().Depth(context.Background(), testTime, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ID("90"), got[0].StnID)
	assert.InDelta(t, 12.5, got[0].Sd.Float64(), 0)
	assert.Equal(t, "tot", rec.query(t).Get("sd"))

	_, err = c.Snow().Depth(context.Background(), testTime, "week")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestTyphoon_Details(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t, map[string]any{"typId": 2501, "typNm": "우딥"})}
	c := newTestClient(t, newServer(t, rec))

	got, err := c.Typhoon().Details(context.Background(), "2501")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ID("2501"), got[0].TypID)
	assert.Equal(t, "2501", rec.query(t).Get("typ_id"))
}

func TestSatellite_UsesLongerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(150 * time.Millisecond):
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"response":{"header":{"resultCode":"00","resultMsg":"OK"},"body":{}}}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{
		AuthKey:          testKey,
		BaseURL:          srv.URL,
		Timeout:          50 * time.Millisecond,
		SatelliteTimeout: 5 * time.Second,
	}, testLogger())
	require.NoError(t, err)

	_, err = c.Satellite().FileList(context.Background(), SatelliteQuery{})
	require.NoError(t, err)

	_, err = c.Call(context.Background(), "satellite.file_list", Params{"sat": ""})
	require.NoError(t, err, "catalog calls honor the satellite timeout too")

	_, err = c.Stations().ASOS(context.Background(), 0)
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
}

func TestSatellite_FileListDefaults(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Satellite().FileList(context.Background(), SatelliteQuery{Area: "KO"})
	require.NoError(t, err)
	q := rec.query(t)
	assert.Equal(t, "GK2A", q.Get("sat"))
	assert.Equal(t, "KO", q.Get("area"))
	assert.False(t, q.Has("tm"))
}

func TestForecast_Village(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t,
		map[string]any{"baseDate": "20250101", "baseTime": "0500", "category": "TMP", "fcstValue": "3", "nx": 60, "ny": 127},
	)}
	c := newTestClient(t, newServer(t, rec))

	base := time.Date(2025, 1, 1, 5, 0, 0, 0, domain.KST)
	got, err := c.Forecast().Village(context.Background(), VillageQuery{Base: base, Nx: 60, Ny: 127})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TMP", got[0].Category)

	q := rec.query(t)
	assert.Equal(t, "/openapi/VilageFcstInfoService_2.0/getVilageFcst", rec.last(t).URL.Path)
	assert.Equal(t, "20250101", q.Get("base_date"))
	assert.Equal(t, "0500", q.Get("base_time"))
	assert.Equal(t, "JSON", q.Get("dataType"))
	assert.Equal(t, "1000", q.Get("numOfRows"))
	assert.Equal(t, "0", q.Get("help"))
}

func TestForecast_VersionRejectsUnknownType(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Forecast().Version(context.Background(), "LONG", testTime)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ftype", vErr.Param)
}

func TestForecast_DistributionMapOptions(t *testing.T) {
	rec := &recorder{body: "GIF89a"}
	c := newTestClient(t, newServer(t, rec))

	body, err := c.Forecast().ShortDistributionMap(context.Background(), MapQuery{
		Data0:   "GEMD",
		Data1:   "PTY",
		Issued:  testTime,
		Valid:   testTime.Add(3 * time.Hour),
		Options: Params{"size": 800},
	})
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(body))

	q := rec.query(t)
	assert.Equal(t, "/hub/typ03/cgi/dfs/nph-dfs_shrt_ana_5d_test", rec.last(t).URL.Path)
	assert.Equal(t, "800", q.Get("size"))
	assert.Equal(t, "G1", q.Get("map"))
	assert.Equal(t, "202501011500", q.Get("tm_ef"))
}

func TestForecast_MidLandRequiresRegion(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.Forecast().MidLand(context.Background(), "", testTime)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, rec.count())

	_, err = c.Forecast().MidLand(context.Background(), "11B00000", testTime)
	require.NoError(t, err)
	assert.Equal(t, "11B00000", rec.query(t).Get("regId"))
}

func TestCheckReadiness(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 3, 10, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	require.NoError(t, c.CheckReadiness(context.Background()))
	q := rec.query(t)
	assert.Equal(t, "/cgi/nph-aws2_min", rec.last(t).URL.Path)
	assert.Equal(t, "202501011200", q.Get("tm1"))
	assert.Equal(t, "202501011200", q.Get("tm2"))
	assert.Equal(t, "104", q.Get("stn"))
}

func TestCheckReadiness_BadKey(t *testing.T) {
	body := `{"response":{"header":{"resultCode":"30","resultMsg":"SERVICE_KEY_IS_NOT_REGISTERED_ERROR"}}}`
	c := newTestClient(t, newServer(t, &recorder{body: body}))

	err := c.CheckReadiness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "30", apiErr.Code)
}

func TestBuoy_Data(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t, map[string]any{
		"tm": "202501011200", "buoyId": 22101, "buoyNm": "덕적도", "wh": "1.2", "wt": 8.4,
	})}
	c := newTestClient(t, newServer(t, rec))

	got, err := c.Buoy().Data(context.Background(), testTime, 22101)
	require.NoError(t, err)

	want := []domain.BuoyObservation{{Tm: "202501011200", BuoyID: "22101", BuoyNm: "덕적도", Wh: domain.NewNumber(1.2), Wt: domain.NewNumber(8.4)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/url/kma_buoy.php", rec.last(t).URL.Path)
	assert.Equal(t, "22101", rec.query(t).Get("buoy"))
}

func TestBuoy_MarineAllKeepsColumns(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t,
		map[string]any{"platform": "buoy", "wh": 1.2},
		map[string]any{"platform": "lighthouse", "vis": 9000},
	)}
	c := newTestClient(t, newServer(t, rec))

	got, err := c.Buoy().MarineAll(context.Background(), testTime)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "lighthouse", got[1]["platform"])
	assert.Contains(t, got[1], "vis")
	assert.Equal(t, "/url/kma_marine_all.php", rec.last(t).URL.Path)
}

func TestAMOS_Defaults(t *testing.T) {
	rec := &recorder{body: envelopeJSON(t)}
	c := newTestClient(t, newServer(t, rec))

	_, err := c.AMOS().Airport(context.Background(), testTime, 0)
	require.NoError(t, err)
	assert.Equal(t, "60", rec.query(t).Get("dtm"))

	_, err = c.AMOS().AMDAR(context.Background(), testTime, testTime.Add(time.Hour), "")
	require.NoError(t, err)
	assert.Equal(t, "/url/amdar_kma.php", rec.last(t).URL.Path)
	assert.Equal(t, "E", rec.query(t).Get("st"))
}
