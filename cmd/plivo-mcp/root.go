package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"plivo-mcp/internal/config"
	"plivo-mcp/internal/gateway"
	"plivo-mcp/internal/telemetry"
	"plivo-mcp/internal/telephony"
	"plivo-mcp/pkg/logger"
)

var (
	// Version is the version of the binary
	Version = "unknown"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "plivo-mcp",
		Short:        "Plivo telephony tools for MCP clients.",
		Long:         "plivo-mcp exposes Plivo SMS, voice and account operations as MCP tools over stdio, or as a small HTTP API.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), cfg.App.Env)
			slog.SetDefault(a.log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(cmd, a)
		},
	}

	cmd.AddCommand(
		NewStdioCmd(a),
		NewHTTPCmd(a),
		NewToolsCmd(),
		NewTokenCmd(a),
	)
	return cmd
}

// newGateway builds the single provider client for the process and the gateway over it.
func newGateway(a *app, registry *prometheus.Registry) (*gateway.Gateway, error) {
	provider, err := telephony.NewPlivoProvider(telephony.PlivoConfig{
		AuthID:      a.cfg.Plivo.AuthID,
		AuthToken:   a.cfg.Plivo.AuthToken,
		HTTPTimeout: a.cfg.Plivo.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("provider init: %w", err)
	}
	return gateway.New(provider,
		gateway.WithLogger(a.log),
		gateway.WithMetrics(telemetry.New(registry)),
	), nil
}
