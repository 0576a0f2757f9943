package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the operator CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "authctl",
		Short:        "Operator tooling for the authentication service",
		SilenceUsage: true,
	}

	cmd.AddCommand(NewKeygenCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
