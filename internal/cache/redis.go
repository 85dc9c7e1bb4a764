package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogKey = "catalog:snapshot"

type RedisClient struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		log:    log,
	}, nil
}

// NewFromClient wraps an existing client without pinging it.
func NewFromClient(rdb *redis.Client, log *zap.Logger) *RedisClient {
	return &RedisClient{client: rdb, log: log}
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetCatalog returns redis.Nil on a cache miss.
func (r *RedisClient) GetCatalog(ctx context.Context) ([]byte, error) {
	return r.client.Get(ctx, catalogKey).Bytes()
}

func (r *RedisClient) SetCatalog(ctx context.Context, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, catalogKey, data, ttl).Err()
}

func (r *RedisClient) InvalidateCatalog(ctx context.Context) error {
	return r.client.Del(ctx, catalogKey).Err()
}
