package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string `envconfig:"PORT" default:"8111"`

	// Database configuration
	DBType            string `envconfig:"DB_TYPE" default:"postgres"` // postgres, mysql, sqlite, sqlserver
	DBHost            string `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string `envconfig:"DB_PORT"`
	DBDatabase        string `envconfig:"DB_DATABASE"`
	DBUser            string `envconfig:"DB_USER"`
	DBPassword        string `envconfig:"DB_PASSWORD"`
	DBConnectionLimit int    `envconfig:"DB_CONNECTION_LIMIT" default:"5"`
	DBAutoMigrate     bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	DBLogLevel        string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Logging configuration
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// legacy environment names accepted when the DB_ name is unset
var legacyEnv = map[string]string{
	"DATABASE_HOST": "DB_HOST",
	"DATABASE_USER": "DB_USER",
	"DATABASE_PASS": "DB_PASSWORD",
	"DATABASE_NAME": "DB_DATABASE",
}

// Load loads configuration from the environment, after reading ENV_FILE (default .env) if present
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	for legacy, current := range legacyEnv {
		if os.Getenv(current) == "" {
			if value := os.Getenv(legacy); value != "" {
				os.Setenv(current, value)
			}
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.DBPort == "" {
		cfg.DBPort = defaultPort(cfg.DBType)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (cfg *Config) Validate() error {
	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBUser == "" && !cfg.IsSQLite() {
		return fmt.Errorf("DB_USER is required")
	}
	if cfg.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be positive, got %d", cfg.DBConnectionLimit)
	}
	return nil
}

// IsSQLite reports whether DBDatabase names a local file rather than a server database
func (cfg *Config) IsSQLite() bool {
	return cfg.DBType == "sqlite"
}

func defaultPort(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return "3306"
	case "sqlserver", "mssql":
		return "1433"
	case "sqlite":
		return ""
	default:
		return "5432"
	}
}
