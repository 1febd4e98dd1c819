package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"3000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// DatabaseURL may be empty, in which case pgx falls back to the libpq
	// PGHOST/PGUSER/PGPASSWORD/PGDATABASE/PGPORT variables.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"0"`
	Version     string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv populates the environment from the given .env files (".env" when
// none are given). Variables already set in the environment win. A missing
// file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}
