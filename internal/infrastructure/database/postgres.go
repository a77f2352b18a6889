package database

import (
	"fmt"
	"time"

	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres opens the relational store used when STORE_DRIVER=postgres.
func OpenPostgres(cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         NewGormLogger(log, time.Second),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	if cfg.DBMaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpen)
	}
	if cfg.DBMaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
