package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
)

func newEndpointsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "endpoints [prefix]",
		Short: "List the endpoint catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := kma.DefaultCatalog()
			if err != nil {
				return errors.Wrap(err, "load catalog")
			}
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}

			var endpoints []kma.Endpoint
			for _, ep := range cat.List() {
				if strings.HasPrefix(ep.Name, prefix) {
					endpoints = append(endpoints, ep)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(endpoints)
			}
			return writeEndpointTable(cmd, endpoints)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full entries, including parameters, as JSON")
	return cmd
}

func writeEndpointTable(cmd *cobra.Command, endpoints []kma.Endpoint) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBASE\tPARAMS\tDESCRIPTION")
	for _, ep := range endpoints {
		desc := ep.Description
		if !ep.Supported() {
			desc = "(not supported, use " + ep.Unsupported + ") " + desc
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ep.Name, ep.Base, paramSummary(ep.Params), desc)
	}
	return w.Flush()
}

// paramSummary lists parameter names, marking required ones with '*'.
func paramSummary(params []kma.ParamSpec) string {
	if len(params) == 0 {
		return "-"
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Required {
			names = append(names, p.Name+"*")
			continue
		}
		names = append(names, p.Name)
	}
	return strings.Join(names, ",")
}
