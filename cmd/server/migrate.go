package main

import (
	"github.com/spf13/cobra"

	"zoo/internal/platform/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded primary store schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			log.InfoContext(ctx, "schema applied")
			return nil
		},
	}
}
