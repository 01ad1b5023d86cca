package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/databases/redis"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

const cacheDriverRedis = "redis"

type closer func() error

func setupDatabase(ctx context.Context, log logger.Logger, cfg *config.PostgresConfig) (*postgres.PgDB, error) {
	db, err := postgres.NewPostgresDB(ctx, log, cfg.DSN(), postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return db, nil
}

// setupCache returns the cache layer and, for the redis driver, the closer
// of its client.
func setupCache(ctx context.Context, log logger.Logger, cfg *config.Config) (*cache.Layer, closer, error) {
	if cfg.Cache.Driver != cacheDriverRedis {
		return cache.NewLayer(cache.NewLocalStore(cfg.Cache.Size, cfg.Cache.TTL), cfg.Cache.TTL, log), nil, nil
	}

	client, err := redis.NewClient(ctx, log, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}

	return cache.NewLayer(cache.NewRedisStore(client, cfg.Cache.KeyPrefix), cfg.Cache.TTL, log), client.Close, nil
}

func consumerConfig(cfg *config.KafkaConfig) consumer.Config {
	return consumer.Config{
		MaxRetries:      cfg.MaxRetries,
		RetryBackoff:    cfg.RetryBackoff,
		DeadLetterTopic: cfg.DeadLetterTopic,
	}
}

func closeAll(closers []closer) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
