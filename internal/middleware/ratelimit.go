package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-pos/internal/config"
)

// LoginRateLimit applies a fixed-window counter per client IP to the
// login endpoint, backed by Redis. When disabled or without a Redis
// client it is a pass-through; Redis errors fail open so an outage
// never locks staff out.
func LoginRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rl:login:" + c.RealIP()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Capacity) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many login attempts"})
			}
			return next(c)
		}
	}
}
