package mcp

import "context"

type typhoonDetailsInput struct {
	TyphoonID string `json:"typhoon_id" jsonschema:"typhoon id, e.g. 2501 for the first typhoon of 2025" validate:"required,max=16"`
	Forecast  bool   `json:"forecast,omitempty" jsonschema:"return the forecast track instead of the observed track"`
}

type recentEarthquakeInput struct {
	Tm string `json:"tm,omitempty" jsonschema:"reference time in YYYYMMDDHHmm (KST); defaults to now" validate:"omitempty,kmadatetime"`
}

type earthquakeListInput struct {
	Tm1 string `json:"tm1" jsonschema:"start time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
	Tm2 string `json:"tm2" jsonschema:"end time in YYYYMMDDHHmm (KST)" validate:"required,kmadatetime"`
}

type radarImageInput struct {
	Tm      string `json:"tm,omitempty" jsonschema:"time in YYYYMMDDHHmm (KST); defaults to the current hour" validate:"omitempty,kmadatetime"`
	RadarID string `json:"radar_id,omitempty" jsonschema:"radar site; KWK (composite) by default" validate:"omitempty,alphanum,max=8"`
}

func (s *Server) registerHazardTools() {
	addTool(s, "get_current_typhoons", "List typhoons currently active.",
		func(ctx context.Context, _ struct{}) (string, error) {
			return jsonResult(s.client.Typhoon().Current(ctx))
		})

	addTool(s, "get_typhoon_details", "Get the observed or forecast track of a typhoon.",
		func(ctx context.Context, in typhoonDetailsInput) (string, error) {
			if in.Forecast {
				return jsonResult(s.client.Typhoon().Forecast(ctx, in.TyphoonID))
			}
			return jsonResult(s.client.Typhoon().Details(ctx, in.TyphoonID))
		})

	addTool(s, "get_recent_earthquake", "Get earthquakes of the ten days before a time.",
		func(ctx context.Context, in recentEarthquakeInput) (string, error) {
			tm, err := parseOptional(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Earthquake().Recent(ctx, tm))
		})

	addTool(s, "get_earthquake_list", "List earthquakes within a time period.",
		func(ctx context.Context, in earthquakeListInput) (string, error) {
			tm1, tm2, err := parsePeriod(in.Tm1, in.Tm2)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Earthquake().List(ctx, tm1, tm2))
		})

	addTool(s, "get_current_warnings", "List weather warnings and advisories currently in effect.",
		func(ctx context.Context, _ struct{}) (string, error) {
			return jsonResult(s.client.Warning().Current(ctx))
		})

	addTool(s, "get_radar_image", "Get radar image references for a time.",
		func(ctx context.Context, in radarImageInput) (string, error) {
			tm, err := timeOrCurrentHour(in.Tm)
			if err != nil {
				return "", err
			}
			return jsonResult(s.client.Radar().Image(ctx, tm, in.RadarID))
		})
}
