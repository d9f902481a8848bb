package adapter

import (
	"context"
	"fmt"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient defines the Redis operations used for shared rate limiting
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Allow consumes one request from the GCRA bucket stored under key
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps a go-redis client and its redis_rate limiter
type RealRedisClient struct {
	client  *redis.Client
	limiter *redis_rate.Limiter
}

// NewRedisClient creates a Redis client from a redis:// or rediss:// URL
func NewRedisClient(url string) (RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	return &RealRedisClient{
		client:  client,
		limiter: redis_rate.NewLimiter(client),
	}, nil
}

func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisClient) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}

func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
