package main

import (
	"github.com/spf13/cobra"

	"adchain/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return err
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}
