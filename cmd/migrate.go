package main

import (
	"fmt"

	root "domainintel"
	"domainintel/internal/config"
	"domainintel/pkg/logger"

	"github.com/spf13/cobra"
)

// migrateCommand applies the record store and river schema migrations. serve
// runs the same step on startup unless database.autoMigrate is off.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pg, closePg, err := getPostgres(ctx, cfg)
			if err != nil {
				return fmt.Errorf("could not connect to postgres: %w", err)
			}
			defer closePg()

			if err := pg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
				return fmt.Errorf("could not migrate database: %w", err)
			}
			logger.Info(ctx, "database is up to date")

			return nil
		},
	}
}
