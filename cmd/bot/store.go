package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/config"
	"github.com/aliskhannn/mcq-exam-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/mcq-exam-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/mcq-exam-bot/internal/infra/redis"
	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
)

// openStore connects the configured question store. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (repository.QuestionStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		lg.Info("using redis question store", zap.String("addr", cfg.Redis.Addr))

		return redis.NewQuestionSetStore(client, cfg.Storage.RecordName), func() { _ = client.Close() }, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		store := pgrepo.NewQuestionSetStore(pool, cfg.Storage.RecordName)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		lg.Info("using postgres question store")

		return store, pool.Close, nil

	case config.DriverFile:
		store, err := repository.NewFileStore(afero.NewOsFs(), cfg.Storage.FileDir, cfg.Storage.RecordName)
		if err != nil {
			return nil, nil, err
		}
		lg.Info("using file question store", zap.String("path", store.Path()))

		return store, func() {}, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Storage.Driver)
}
