package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/logger"
)

const (
	DEFAULT_IDLE_TTL       = 10 * time.Minute
	DEFAULT_KEY_PREFIX     = "ff:identity:limiter:"
	DEFAULT_REDIS_RECHECK  = 10 * time.Second
	DEFAULT_REDIS_PING_TTL = 2 * time.Second
)

// Config holds the per-client rate limit settings
type Config struct {
	RequestsPerSecond int
	Burst             int
	// IdleTTL is how long a local client bucket survives without requests
	IdleTTL time.Duration
	// KeyPrefix namespaces the Redis keys
	KeyPrefix string
	// RedisRecheck is how long to stay on local buckets after a Redis error
	RedisRecheck time.Duration
}

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits requests per client key
type Limiter interface {
	// Allow consumes one request for key
	Allow(ctx context.Context, key string) (Decision, error)

	// Close releases the Redis connection, if any
	Close() error
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	config Config
	clock  adapter.Clock
	redis  adapter.RedisClient

	redisAvailable atomic.Bool
	redisDownAt    atomic.Int64

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time

	closeOnce sync.Once
}

// New creates a limiter. With a nil Redis client all buckets are kept in
// process; otherwise Redis is shared across replicas and local buckets are
// only used while Redis is failing.
func New(cfg Config, clock adapter.Clock, redis adapter.RedisClient) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, errors.New("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DEFAULT_IDLE_TTL
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}
	if cfg.RedisRecheck <= 0 {
		cfg.RedisRecheck = DEFAULT_REDIS_RECHECK
	}

	l := &limiter{
		config:    cfg,
		clock:     clock,
		redis:     redis,
		buckets:   make(map[string]*bucket),
		lastSweep: clock.Now(),
	}
	l.redisAvailable.Store(redis != nil)
	return l, nil
}

// Allow consumes one request for key
func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.redis != nil {
		l.maybeRestoreRedis(ctx)

		if l.redisAvailable.Load() {
			d, err := l.allowDistributed(ctx, key)
			if err == nil {
				return d, nil
			}
			if ctx.Err() != nil {
				return Decision{}, ctx.Err()
			}

			l.redisAvailable.Store(false)
			l.redisDownAt.Store(l.clock.Now().UnixNano())
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
		}
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (Decision, error) {
	res, err := l.redis.Allow(ctx, l.config.KeyPrefix+key, redis_rate.Limit{
		Rate:   l.config.RequestsPerSecond,
		Burst:  l.config.Burst,
		Period: time.Second,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("redis allow: %w", err)
	}

	return Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: max(res.RetryAfter, 0),
	}, nil
}

func (l *limiter) allowLocal(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{RetryAfter: delay}
	}

	return Decision{
		Allowed:   true,
		Remaining: int(math.Floor(b.limiter.TokensAt(now))),
	}
}

// sweep drops buckets idle for longer than IdleTTL. Caller holds mu.
func (l *limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.config.IdleTTL {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.config.IdleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// maybeRestoreRedis pings Redis once RedisRecheck has passed since the last failure
func (l *limiter) maybeRestoreRedis(ctx context.Context) {
	if l.redisAvailable.Load() {
		return
	}
	downAt := time.Unix(0, l.redisDownAt.Load())
	if l.clock.Since(downAt) < l.config.RedisRecheck {
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, DEFAULT_REDIS_PING_TTL)
	defer cancel()
	if err := l.redis.Ping(pingCtx); err != nil {
		l.redisDownAt.Store(l.clock.Now().UnixNano())
		return
	}

	l.redisAvailable.Store(true)
	logger.InfoCtx(ctx, "Redis rate limiter connection restored")
}

// Close releases the Redis connection, if any
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.redis != nil {
			err = l.redis.Close()
		}
	})
	return err
}

// RetryAfterSeconds rounds a retry delay up to whole seconds for the Retry-After header
func RetryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}
