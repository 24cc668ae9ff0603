// @title Vet Clinic API
// @version 1.0
// @description Dueños, mascotas, citas con servicios facturables y facturas.
// @BasePath /
package main

import (
	"fmt"
	"io"
	"os"

	"vet-clinic/internal/config"
	"vet-clinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

var envFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet-clinic",
		Short: "vet-clinic - API de la clínica veterinaria",
		Long:  "Sin subcomando levanta el servidor HTTP (igual que `serve`).",
		RunE:  runServe,
	}
	cmd.SilenceUsage = true
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Archivo .env opcional")
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg, os.Stdout), nil
}

// newLogger es el único lugar donde se arma el logger de la app: nivel y
// formato salen de la config ya cargada (entorno + .env).
func newLogger(cfg *config.Config, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Output: out,
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
