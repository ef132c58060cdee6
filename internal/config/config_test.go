package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		t.Setenv(strings.ToUpper(key), "")
	}
	t.Setenv("DB_SSLMODE", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.GinMode != "debug" || cfg.Port != "8080" || cfg.DBDriver != DriverPostgres {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("expected sslmode disable in debug, got %q", cfg.DBSSLMode)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.IdleTimeout != time.Minute {
		t.Errorf("unexpected timeouts: read=%s idle=%s", cfg.ReadTimeout, cfg.IdleTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("HTTP_WRITE_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9090" || cfg.DBHost != "db.internal" {
		t.Errorf("expected overrides, got %+v", cfg)
	}
	if cfg.DBSSLMode != "require" {
		t.Errorf("expected sslmode require in release, got %q", cfg.DBSSLMode)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Errorf("expected write timeout 3s, got %s", cfg.WriteTimeout)
	}
}

func TestLoad_ExplicitSSLMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_SSLMODE", "verify-full")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DBSSLMode != "verify-full" {
		t.Errorf("expected verify-full, got %q", cfg.DBSSLMode)
	}
}

func TestLoad_SQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/books.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DBPath != "/tmp/books.db" {
		t.Errorf("unexpected sqlite config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"driver":   {"DB_DRIVER", "mysql"},
		"gin mode": {"GIN_MODE", "prod"},
		"port":     {"PORT", "http"},
		"timeout":  {"HTTP_READ_TIMEOUT", "soon"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			if _, err := Load(); err == nil {
				t.Fatalf("expected %s=%s to be rejected", kv[0], kv[1])
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:    "localhost",
		DBUser:    "postgres",
		DBPass:    "secret",
		DBName:    "books",
		DBPort:    "5432",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}

	want := "host=localhost user=postgres password=secret dbname=books port=5432 sslmode=disable TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
