package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-reservation/internal/infra/db"
	"hotel-reservation/internal/infra/filestore"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/infra/pgstore"
	"hotel-reservation/internal/infra/redisstore"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewGateway,
	),
)

// NewGateway opens the persistence backend named by STORE_DRIVER.
func NewGateway(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Gateway, error) {
	ctx := context.Background()

	switch cfg.Store.Driver {
	case DriverFile:
		store, err := filestore.NewStore(cfg.Store.DataDir, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using file store", "dir", cfg.Store.DataDir)
		return store, nil

	case DriverMemory:
		logger.Warn("using in-memory store; state is lost on exit")
		return memstore.NewStore(), nil

	case DriverRedis:
		client, cleanup, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		logger.Info("using redis store", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.KeyPrefix)
		return redisstore.NewStore(client, cfg.Redis.KeyPrefix, logger), nil

	case DriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		store := pgstore.NewStore(pool, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		logger.Info("using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
