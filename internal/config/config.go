package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode  string `koanf:"gin_mode" validate:"required,oneof=debug release test"`
	Port     string `koanf:"port" validate:"required,numeric"`
	TZ       string `koanf:"tz" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`

	DBDriver  string `koanf:"db_driver" validate:"required,oneof=postgres sqlite"`
	DBHost    string `koanf:"db_host" validate:"required_if=DBDriver postgres"`
	DBPort    string `koanf:"db_port" validate:"required_if=DBDriver postgres"`
	DBUser    string `koanf:"db_user" validate:"required_if=DBDriver postgres"`
	DBPass    string `koanf:"db_pass"`
	DBName    string `koanf:"db_name" validate:"required_if=DBDriver postgres"`
	DBSSLMode string `koanf:"db_sslmode"`
	DBPath    string `koanf:"db_path" validate:"required_if=DBDriver sqlite"`

	ReadTimeout  time.Duration `koanf:"http_read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"http_write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"http_idle_timeout" validate:"gt=0"`
}

var defaults = map[string]any{
	"gin_mode":           "debug",
	"port":               "8080",
	"tz":                 "UTC",
	"log_level":          "info",
	"db_driver":          DriverPostgres,
	"db_host":            "localhost",
	"db_port":            "5432",
	"db_user":            "postgres",
	"db_pass":            "",
	"db_name":            "postgres",
	"db_path":            "books.db",
	"http_read_timeout":  "10s",
	"http_write_timeout": "10s",
	"http_idle_timeout":  "60s",
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	// Empty variables count as unset so the defaults still apply.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		key = strings.ToLower(key)
		if value == "" {
			return "", nil
		}
		if _, ok := defaults[key]; !ok && key != "db_sslmode" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
