package main

import (
	"context"
	"errors"

	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes y termina",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.UsePostgres() {
				return errors.New("DB_DSN is required to run migrations")
			}
			pool, err := pg.Open(cmd.Context(), cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()
			return migrate(cmd.Context(), pool, log)
		},
	}
}

func migrate(ctx context.Context, db pg.DB, log logger.Logger) error {
	migs, err := pg.LoadMigrations()
	if err != nil {
		return err
	}
	applied, err := pg.Migrate(ctx, db, migs)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		log.Info("schema up to date", nil)
		return nil
	}
	log.Info("migrations applied", map[string]any{"migrations": applied})
	return nil
}
