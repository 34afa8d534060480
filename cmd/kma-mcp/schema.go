package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// records maps record names to zero values for schema reflection.
var records = map[string]any{
	"ASOSObservation":           domain.ASOSObservation{},
	"AWSObservation":            domain.AWSObservation{},
	"AWSLandSurfaceTemperature": domain.AWSLandSurfaceTemperature{},
	"AWSCloudData":              domain.AWSCloudData{},
	"AWSOAData":                 domain.AWSOAData{},
	"NKObservation":             domain.NKObservation{},
	"UVObservation":             domain.UVObservation{},
	"DustObservation":           domain.DustObservation{},
	"SnowObservation":           domain.SnowObservation{},
	"SeasonObservation":         domain.SeasonObservation{},
	"ClimateNormal":             domain.ClimateNormal{},
	"StationInfo":               domain.StationInfo{},
	"BuoyObservation":           domain.BuoyObservation{},
	"AMOSObservation":           domain.AMOSObservation{},
	"AMDARData":                 domain.AMDARData{},
	"EarthquakeData":            domain.EarthquakeData{},
	"TyphoonInfo":               domain.TyphoonInfo{},
	"WarningData":               domain.WarningData{},
	"LightningData":             domain.LightningData{},
	"RadiosondeData":            domain.RadiosondeData{},
	"StabilityIndex":            domain.StabilityIndex{},
	"WindProfilerData":          domain.WindProfilerData{},
	"RadarImage":                domain.RadarImage{},
	"RadarReflectivity":         domain.RadarReflectivity{},
	"SatelliteFile":             domain.SatelliteFile{},
	"SatelliteImagery":          domain.SatelliteImagery{},
	"SynopObservation":          domain.SynopObservation{},
	"ShipObservation":           domain.ShipObservation{},
	"AircraftReport":            domain.AircraftReport{},
	"ChartData":                 domain.ChartData{},
	"ForecastData":              domain.ForecastData{},
	"VillageForecastItem":       domain.VillageForecastItem{},
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [record]",
		Short: "Print the JSON Schema of a domain record, or list record names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range recordNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			schema, err := recordSchema(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	}
}

func recordNames() []string {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func recordSchema(name string) (*jsonschema.Schema, error) {
	rec, ok := records[name]
	if !ok {
		return nil, errors.Errorf("unknown record %q: run \"kma-mcp schema\" for the list", name)
	}
	r := &jsonschema.Reflector{
		DoNotReference: true,
		// Upstream omits columns freely.
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapScalars,
	}
	return r.Reflect(rec), nil
}

// mapScalars describes the lenient scalars by what they accept on the wire.
func mapScalars(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeFor[domain.Number]():
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{{Type: "number"}, {Type: "string"}, {Type: "null"}},
		}
	case reflect.TypeFor[domain.ID]():
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "integer"}},
		}
	}
	return nil
}
