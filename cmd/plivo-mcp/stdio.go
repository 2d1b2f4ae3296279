package main

import (
	"github.com/spf13/cobra"

	"plivo-mcp/internal/mcpserver"
)

func NewStdioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve the tools over MCP on stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(cmd, a)
		},
	}
}

func runStdio(cmd *cobra.Command, a *app) error {
	g, err := newGateway(a, nil)
	if err != nil {
		return err
	}
	s := mcpserver.New(g, a.log)
	return mcpserver.ServeStdio(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout(), a.log)
}
