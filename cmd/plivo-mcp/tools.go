package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"plivo-mcp/internal/gateway"
)

func NewToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as YAML",
		Example: `  # Show every tool with its parameters
  plivo-mcp tools`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(gateway.Catalog()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
