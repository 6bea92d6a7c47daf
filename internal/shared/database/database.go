package database

import (
	"context"
	"fmt"
	"time"

	"boxoffice/internal/shared/config"
	"boxoffice/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// DB holds the shared backing connections. Redis is optional; a nil client
// means the service runs on in-memory selection storage without rate limiting.
type DB struct {
	Redis *redis.Client
}

// InitDB initializes the backing connections
func InitDB(cfg *config.Config) (*DB, error) {
	if !cfg.Redis.Enabled {
		logger.GetDefault().Info("Redis disabled, using in-memory selection store")
		return &DB{}, nil
	}

	rdb, err := initRedis(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	return &DB{Redis: rdb}, nil
}

// initRedis initializes Redis connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,

		// Connection pool settings
		PoolSize:     10,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.GetDefault().Info("Redis connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return rdb, nil
}

// Close closes all connections
func (db *DB) Close() error {
	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	logger.GetDefault().Info("All backing connections closed")
	return nil
}

// GetRedisClient returns the Redis client, nil when Redis is disabled
func (db *DB) GetRedisClient() *redis.Client {
	return db.Redis
}

// HasRedis reports whether a Redis connection is available
func (db *DB) HasRedis() bool {
	return db.Redis != nil
}
