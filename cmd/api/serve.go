package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:              log,
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		SeedDefaultServices: cfg.SeedDefaultServices,
	}

	if cfg.UsePostgres() {
		pool, err := pg.Open(ctx, cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := migrate(ctx, pool, log); err != nil {
				return err
			}
		}
		opts.DB = pool
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	h, err := router.NewRouter(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
