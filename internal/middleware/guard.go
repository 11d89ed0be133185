package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/rbac"
)

// RequirePage returns a middleware enforcing that the session's role
// has access to the given page. It assumes JWTAuth ran earlier; a
// request without a session role is treated as unauthenticated (401),
// while a known role without the page grant gets the distinct
// "forbidden" outcome (403). Like the rest of the RBAC layer this is
// client-convenience gating, not a trust boundary.
func RequirePage(page string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := SessionRole(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session"})
			}
			if !rbac.HasPageAccess(role, page) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// ActionAllowed is the in-handler counterpart of RequirePage for
// individual affordances (e.g. deleting an order). Handlers deny with
// 403 when it reports false.
func ActionAllowed(c echo.Context, page, action string) bool {
	role, ok := SessionRole(c)
	return ok && rbac.HasActionAccess(role, page, action)
}
