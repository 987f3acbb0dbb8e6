// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Driver names accepted by LECTIO_DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// DBDriver selects the storage backend: "sqlite" or "postgres".
	DBDriver string
	// DBPath is the sqlite database file. Ignored for postgres.
	DBPath string
	// PostgresDSN is the pgx connection string. Ignored for sqlite.
	PostgresDSN string
	// Addr is the HTTP listen address for the serve command.
	Addr string
	// DailyStudyHours is the default plan capacity when a request
	// leaves it unset.
	DailyStudyHours float64
	// LogRequests enables structured use-case logging.
	LogRequests bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBDriver:        DriverSQLite,
		Addr:            "0.0.0.0:8080",
		DailyStudyHours: 6,
		LogRequests:     false,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. A .env file in the working directory
// is loaded first when present; real environment variables win over it.
func Load() (Config, error) {
	// godotenv.Load does not override variables already set.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("LECTIO_DB_DRIVER"); v != "" {
		cfg.DBDriver = v
	}
	if v := os.Getenv("LECTIO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LECTIO_PG_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("LECTIO_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LECTIO_DAILY_STUDY_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 16 {
			cfg.DailyStudyHours = f
		}
	}
	if v := os.Getenv("LECTIO_LOG_REQUESTS"); v != "" {
		cfg.LogRequests, _ = strconv.ParseBool(v)
	}

	if cfg.DBDriver == DriverSQLite && cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".lectio", "lectio.db")
	}

	return cfg, nil
}
