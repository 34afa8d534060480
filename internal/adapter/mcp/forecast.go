package mcp

import (
	"context"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
	"github.com/couchcryptid/kma-mcp/internal/domain"
)

type shortTermForecastInput struct {
	Region string `json:"region,omitempty" jsonschema:"forecast region id, e.g. 11B10101 (Seoul)" validate:"omitempty,alphanum,max=16"`
	Tmfc   string `json:"tmfc,omitempty" jsonschema:"issue time in YYYYMMDDHHmm (KST); defaults to the latest issue" validate:"omitempty,kmadatetime"`
}

type villageForecastInput struct {
	Lat  float64 `json:"lat" jsonschema:"latitude in degrees (33 to 43)" validate:"min=33,max=43"`
	Lon  float64 `json:"lon" jsonschema:"longitude in degrees (124 to 132)" validate:"min=124,max=132"`
	Base string  `json:"base,omitempty" jsonschema:"forecast run in YYYYMMDDHHmm (KST); defaults to the latest published run" validate:"omitempty,kmadatetime"`
}

type satelliteFileListInput struct {
	Satellite string `json:"satellite,omitempty" jsonschema:"satellite; GK2A by default" validate:"omitempty,alphanum,max=8"`
	Vars      string `json:"vars,omitempty" jsonschema:"product level; L1B by default" validate:"omitempty,max=16"`
	Area      string `json:"area,omitempty" jsonschema:"area: FD (full disk, default), KO (Korea), EA (East Asia)" validate:"omitempty,alphanum,max=8"`
	Format    string `json:"format,omitempty" jsonschema:"file format; NetCDF by default" validate:"omitempty,alphanum,max=16"`
	Tm        string `json:"tm,omitempty" jsonschema:"time in YYYYMMDDHHmm (UTC as published); defaults to the latest files" validate:"omitempty,kmadatetime"`
}

func (s *Server) registerForecastTools() {
	addTool(s, "get_short_term_forecast", "Get the short range land forecast for a region.",
		func(ctx context.Context, in shortTermForecastInput) (string, error) {
			tmfc, err := parseOptional(in.Tmfc)
			if err != nil {
				return "", err
			}
			q := kma.ShortQuery{Region: in.Region, Tmfc: tmfc}
			return jsonResult(s.client.Forecast().ShortLand(ctx, q))
		})

	addTool(s, "get_village_forecast", "Get the village (5km grid) forecast for a location in South Korea.",
		func(ctx context.Context, in villageForecastInput) (string, error) {
			base := domain.LatestVillageBase(domain.Now())
			if in.Base != "" {
				var err error
				if base, err = domain.ParseDateTime(in.Base); err != nil {
					return "", err
				}
			}
			nx, ny := domain.LatLonToGrid(in.Lat, in.Lon)
			q := kma.VillageQuery{Base: base, Nx: nx, Ny: ny}
			return jsonResult(s.client.Forecast().Village(ctx, q))
		})

	addTool(s, "get_satellite_file_list", "List GK2A satellite files.",
		func(ctx context.Context, in satelliteFileListInput) (string, error) {
			tm, err := parseOptional(in.Tm)
			if err != nil {
				return "", err
			}
			q := kma.SatelliteQuery{
				Satellite: in.Satellite,
				Vars:      in.Vars,
				Area:      in.Area,
				Format:    in.Format,
				Tm:        tm,
			}
			return jsonResult(s.client.Satellite().FileList(ctx, q))
		})
}
