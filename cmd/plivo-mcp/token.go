package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"plivo-mcp/internal/auth"
	"plivo-mcp/internal/rbac"
)

type tokenOptions struct {
	Subject string
	Role    string
}

func NewTokenCmd(a *app) *cobra.Command {
	options := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for the HTTP API",
		Example: `  # Token for a read-only dashboard
  plivo-mcp token --subject dashboard --role viewer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rbac.IsKnownRole(options.Role) {
				return fmt.Errorf("unknown role %q (want %s, %s or %s)", options.Role, rbac.RoleAdmin, rbac.RoleOperator, rbac.RoleViewer)
			}
			if err := a.cfg.ValidateHTTP(); err != nil {
				return err
			}
			m, err := auth.NewManager(a.cfg.Auth)
			if err != nil {
				return err
			}
			tok, err := m.Issue(time.Now(), options.Subject, options.Role)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&options.Subject, "subject", "", "identity recorded in the token")
	cmd.Flags().StringVar(&options.Role, "role", rbac.RoleViewer, "role granted by the token")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
