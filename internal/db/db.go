package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/snnyvrz/book-manager/internal/config"
	"github.com/snnyvrz/book-manager/internal/logger"
	"github.com/snnyvrz/book-manager/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second

	// Writers wait on the lock instead of failing with SQLITE_BUSY, and
	// transactions take the write lock up front so a read-then-write never
	// has to upgrade.
	sqliteParams = "_busy_timeout=5000&_txlock=immediate"
)

func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.DBPath)), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

func ConnectWithRetry(cfg *config.Config, log *zerolog.Logger) (*gorm.DB, error) {
	return connect(cfg, log, defaultMaxAttempts, defaultDelayBetweenTry)
}

func connect(cfg *config.Config, log *zerolog.Logger, attempts int, delay time.Duration) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: logger.Gorm(log)}

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *gorm.DB
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			err = ping(db)
			if err == nil {
				log.Info().Str("driver", cfg.DBDriver).Int("attempt", attempt).Msg("database connected")
				return db, nil
			}
		}

		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Msg("db not ready")

		if attempt < attempts {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", attempts, err)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Migrate creates or updates the books table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
