package main

import (
	"fmt"

	"auth-api/pkg/config"
	"auth-api/pkg/db"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand
func NewMigrateCmd() *cobra.Command {
	var opts db.MigrateOptions

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the SQL migrations to the configured database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig := config.LoadConfig()

			database, err := db.Connect(appConfig.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(database) }()

			if err := db.Migrate(database, opts, logrus.StandardLogger()); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			cmd.Println("Migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "path", "", "directory holding the SQL migration files (default: the embedded set)")
	cmd.Flags().UintVar(&opts.Version, "version", 0, "target version (0 migrates to latest)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "clear a dirty state left by a failed run before migrating")

	return cmd
}
