package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adchain/internal/db"
)

func newSeedCmd() *cobra.Command {
	var perCategory int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo feed items",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool, perCategory); err != nil {
				return err
			}
			logger.Info("seeded feed items",
				slog.Int("categories", len(db.SeedCategories)),
				slog.Int("per_category", perCategory))
			return nil
		},
	}
	cmd.Flags().IntVar(&perCategory, "items", 30, "feed items per category")
	return cmd
}
