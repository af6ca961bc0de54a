package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// NewIdempotencyStore returns a Redis store when cfg.Enabled, otherwise an
// in-memory one. An enabled but unreachable Redis is an error.
func NewIdempotencyStore(cfg config.RedisConfig, logger *zap.Logger) (shared.IdempotencyStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("Using in-memory idempotency store")
		return NewMemoryIdempotencyStore(0), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr(), err)
	}

	logger.Info("Using Redis idempotency store", zap.String("addr", cfg.Addr()))
	return NewRedisIdempotencyStore(client, ""), nil
}
