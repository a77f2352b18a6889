package routes

import (
	"context"
	"fmt"
	"os"

	"mitsumori_tsuikyaku/internal/adapter/persistence/cache"
	"mitsumori_tsuikyaku/internal/adapter/persistence/gormrepo"
	"mitsumori_tsuikyaku/internal/adapter/persistence/repository"
	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/infrastructure/database"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
)

// stores bundles the repositories of the configured driver.
type stores struct {
	estimates interfaces.IEstimateRepository
	logs      interfaces.IAccessLogRepository
	contacts  interfaces.IEstimateContactRepository
	settings  interfaces.ISettingsRepository
	accounts  interfaces.IAccountRepository
	closers   []func() error
}

func openStores(ctx context.Context, cfg config.Config, log *logger.Logger, metrics *observability.Metrics) (stores, error) {
	var (
		st  stores
		err error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		st, err = openPostgresStores(cfg, log)
	default:
		st, err = openDynamoStores(ctx, log)
	}
	if err != nil {
		return stores{}, err
	}

	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		// The cache is optional; the store alone still serves every request.
		log.Warn("redis unavailable, estimate cache disabled", "error", err)
		return st, nil
	}
	if rdb != nil {
		st.estimates = cache.NewEstimateCache(st.estimates, rdb, cfg.EstimateCacheTTL, log, metrics)
		st.closers = append(st.closers, rdb.Close)
		log.Info("estimate cache enabled", "ttl", cfg.EstimateCacheTTL.String())
	}
	return st, nil
}

func openDynamoStores(ctx context.Context, log *logger.Logger) (stores, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return stores{}, err
	}
	tables := database.TablesFromEnv()
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureTables(ctx, ddb, tables, log); err != nil {
			return stores{}, err
		}
	}
	return stores{
		estimates: repository.NewEstimateDynamoRepository(ddb, tables),
		logs:      repository.NewAccessLogDynamoRepository(ddb, tables),
		contacts:  repository.NewEstimateContactDynamoRepository(ddb, tables),
		settings:  repository.NewSettingsDynamoRepository(ddb, tables),
		accounts:  repository.NewAccountDynamoRepository(ddb, tables),
	}, nil
}

func openPostgresStores(cfg config.Config, log *logger.Logger) (stores, error) {
	db, err := database.OpenPostgres(cfg, log)
	if err != nil {
		return stores{}, err
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		return stores{}, fmt.Errorf("auto migrate: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return stores{}, err
	}
	return stores{
		estimates: gormrepo.NewEstimateRepository(db),
		logs:      gormrepo.NewAccessLogRepository(db),
		contacts:  gormrepo.NewEstimateContactRepository(db),
		settings:  gormrepo.NewSettingsRepository(db),
		accounts:  gormrepo.NewAccountRepository(db),
		closers:   []func() error{sqlDB.Close},
	}, nil
}

// Close returns a func that releases every client in reverse open order.
func (s stores) Close(log *logger.Logger) func() {
	return func() {
		for i := len(s.closers) - 1; i >= 0; i-- {
			if err := s.closers[i](); err != nil {
				log.Warn("close failed", "error", err)
			}
		}
	}
}
