package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
)

type listEndpointsInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"only list endpoints whose name starts with this, e.g. asos. or forecast."`
}

type callEndpointInput struct {
	Name   string            `json:"name" jsonschema:"catalog endpoint name from list_endpoints, e.g. asos.hourly" validate:"required"`
	Params map[string]string `json:"params,omitempty" jsonschema:"query parameters; times as YYYYMMDDHHmm, dates as YYYYMMDD"`
}

// rawResult describes a non-envelope response such as an image or NetCDF file.
type rawResult struct {
	Endpoint    string `json:"endpoint"`
	Bytes       int    `json:"bytes"`
	ContentType string `json:"content_type"`
	DataBase64  string `json:"data_base64"`
}

func (s *Server) registerCatalogTools() {
	addTool(s, "list_endpoints", "List the KMA API Hub endpoints available to call_endpoint, with their parameters.",
		func(_ context.Context, in listEndpointsInput) (string, error) {
			var out []kma.Endpoint
			for _, ep := range s.client.Catalog().List() {
				if strings.HasPrefix(ep.Name, in.Prefix) {
					out = append(out, ep)
				}
			}
			if len(out) == 0 {
				return "", fmt.Errorf("no endpoints match prefix %q", in.Prefix)
			}
			return toJSON(out)
		})

	addTool(s, "call_endpoint", "Call any KMA API Hub endpoint from list_endpoints by name.",
		func(ctx context.Context, in callEndpointInput) (string, error) {
			ep, ok := s.client.Catalog().Lookup(in.Name)
			if !ok {
				return "", fmt.Errorf("unknown endpoint %q: see list_endpoints", in.Name)
			}
			params := make(kma.Params, len(in.Params))
			for k, v := range in.Params {
				params[k] = v
			}

			if !ep.Raw {
				return jsonResult(s.client.Call(ctx, in.Name, params))
			}
			body, err := s.client.CallRaw(ctx, in.Name, params)
			if err != nil {
				return "", err
			}
			return toJSON(rawResult{
				Endpoint:    in.Name,
				Bytes:       len(body),
				ContentType: http.DetectContentType(body),
				DataBase64:  base64.StdEncoding.EncodeToString(body),
			})
		})
}
