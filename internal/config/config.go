package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"vet-clinic"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	// DSN vacío => store in-memory (modo dev).
	DB struct {
		DSN         string `envconfig:"DB_DSN"`
		AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	}

	Server struct {
		ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
		WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	SeedDefaultServices bool `envconfig:"SEED_DEFAULT_SERVICES" default:"true"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func (c *Config) UsePostgres() bool {
	return strings.TrimSpace(c.DB.DSN) != ""
}

// Load lee un .env opcional (si existe) y después el entorno.
// Las variables ya definidas en el entorno tienen prioridad sobre el .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.App.Port)
	}
	return &cfg, nil
}
