package config

// Redis backs the HTTP response cache on read-heavy endpoints and the
// login rate limiter. Connection parameters come from the environment;
// when the server is unreachable the constructor returns nil and both
// features degrade to no-ops.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment
// variables: REDIS_ADDR (host:port, default localhost:6379),
// REDIS_PASSWORD and REDIS_DB. The returned client is nil when the
// initial ping fails; callers must treat nil as "caching disabled".
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// CacheConfig defines settings for the response cache middleware.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX with
// defaults suited to the demo: short TTL, enabled.
func LoadCacheConfig() CacheConfig {
	ttl, err := time.ParseDuration(envStr("CACHE_TTL", "30s"))
	if err != nil {
		ttl = 30 * time.Second
	}
	return CacheConfig{
		Enabled: envStr("CACHE_ENABLED", "true") == "true",
		TTL:     ttl,
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
}

// RateLimitConfig defines the fixed-window limit applied to login
// attempts.
type RateLimitConfig struct {
	Enabled  bool
	Capacity int           // attempts allowed per client IP per window
	Window   time.Duration // counter reset interval
}

// LoadRateLimitConfig reads RATE_LIMIT_ENABLED, RATE_LIMIT_CAPACITY and
// RATE_LIMIT_WINDOW with defaults of 10 attempts per minute.
func LoadRateLimitConfig() RateLimitConfig {
	window, err := time.ParseDuration(envStr("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		window = time.Minute
	}
	cfg := RateLimitConfig{
		Enabled:  envStr("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity: envInt("RATE_LIMIT_CAPACITY", 10),
		Window:   window,
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	return cfg
}
