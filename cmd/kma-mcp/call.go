package main

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
)

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <endpoint> [key=value...]",
		Short: "Call a catalog endpoint and print its items as JSON",
		Long: "Call resolves <endpoint> in the catalog (see the endpoints command), sends\n" +
			"the key=value pairs as query parameters and prints the envelope items.\n" +
			"Raw products such as images are written to stdout unchanged.",
		Example: "  kma-mcp call asos.hourly tm=202501011200 stn=108",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			name := args[0]
			ep, ok := a.client.Catalog().Lookup(name)
			if !ok {
				return errors.Errorf("unknown endpoint %q: run \"kma-mcp endpoints\" for the list", name)
			}

			if ep.Raw {
				body, err := a.client.CallRaw(cmd.Context(), name, params)
				if err != nil {
					return errors.Wrapf(err, "call %s", name)
				}
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			items, err := a.client.Call(cmd.Context(), name, params)
			if err != nil {
				return errors.Wrapf(err, "call %s", name)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
}

// parseParams turns key=value arguments into query parameters.
func parseParams(args []string) (kma.Params, error) {
	params := make(kma.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid parameter %q: want key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}
