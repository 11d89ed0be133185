// Package middleware provides shared request processing: session
// authentication and the RBAC page guard, plus the Redis-backed
// response cache and login rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/rbac"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxName   = "name"
	CtxRole   = "role"
)

// JWTAuth returns a middleware that validates a Bearer access token
// and injects the token's subject, display name and session role into
// the request context. A missing or invalid token is the "no session"
// outcome: 401, distinct from the page guard's 403.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			// The role claim must parse to a known session role;
			// anything else fails closed as an invalid session.
			roleStr, _ := claims["role"].(string)
			role, err := rbac.Parse(roleStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session role"})
			}

			c.Set(CtxUserID, claims["sub"])
			c.Set(CtxName, claims["name"])
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

// SessionRole extracts the session role stored by JWTAuth. The second
// return is false when no authenticated session is present.
func SessionRole(c echo.Context) (rbac.Role, bool) {
	role, ok := c.Get(CtxRole).(rbac.Role)
	return role, ok
}

// SessionName extracts the display name stored by JWTAuth.
func SessionName(c echo.Context) string {
	name, _ := c.Get(CtxName).(string)
	return name
}
