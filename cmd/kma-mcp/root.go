package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
	mcpadapter "github.com/couchcryptid/kma-mcp/internal/adapter/mcp"
	"github.com/couchcryptid/kma-mcp/internal/config"
	"github.com/couchcryptid/kma-mcp/internal/observability"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kma-mcp",
		Short: "Korea Meteorological Administration API Hub client and MCP server",
		Long: "kma-mcp serves KMA API Hub weather data as MCP tools. Without a subcommand\n" +
			"it runs the MCP server on stdio. KMA_API_KEY must be set for every command\n" +
			"that contacts the API Hub.",
		SilenceUsage: true,
		RunE:         runStdio,
	}
	root.AddCommand(
		newStdioCmd(),
		newServeCmd(),
		newCallCmd(),
		newEndpointsCmd(),
		newSchemaCmd(),
		newPingCmd(),
	)
	return root
}

func newStdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE:  runStdio,
	}
}

func runStdio(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = mcpadapter.NewServer(a.client, a.logger, a.metrics).RunStdio(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("mcp server error", "error", err)
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}

// app holds the dependencies shared by commands that contact the API Hub.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	client  *kma.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return nil, errors.Wrap(err, "load config")
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client, err := kma.NewClient(kma.Config{
		AuthKey:          cfg.APIKey,
		BaseURL:          cfg.BaseURL,
		CGIBaseURL:       cfg.CGIBaseURL,
		OpenAPIBaseURL:   cfg.OpenAPIBaseURL,
		HubURL:           cfg.HubURL,
		Timeout:          cfg.Timeout,
		SatelliteTimeout: cfg.SatelliteTimeout,
	}, logger, kma.WithMetrics(metrics))
	if err != nil {
		return nil, errors.Wrap(err, "create kma client")
	}

	logger.Info("kma client configured",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"satellite_timeout", cfg.SatelliteTimeout,
	)
	return &app{cfg: cfg, logger: logger, metrics: metrics, client: client}, nil
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the API key is accepted by the API Hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			start := time.Now()
			if err := a.client.CheckReadiness(ctx); err != nil {
				return errors.Wrap(err, "readiness check")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok (%s)\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
