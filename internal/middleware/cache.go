package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-pos/internal/config"
)

// captureWriter captures the response body while forwarding it to the
// client, so a successful response can be stored for later hits.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey builds a stable key from route and query under the
// configured prefix.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum)
}

// ResponseCache caches successful GET responses in Redis for the
// configured TTL. With caching disabled or no Redis client the
// middleware is a pass-through; cache hits are marked with an X-Cache
// header.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(http.StatusOK)
				_, werr := c.Response().Write(body)
				return werr
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
