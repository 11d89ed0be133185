// Package handler contains the HTTP handlers for the POS API. Each
// handler group wraps the stores it needs; validation stays at this
// layer and never reaches the stores.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
	"github.com/iliyamo/restaurant-pos/internal/store"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

// AuthHandler implements login, logout and session introspection.
type AuthHandler struct {
	Users     *store.UserStore
	JWTSecret string
	TTLMin    int
}

// Login handles POST /v1/auth/login. The user record's lower-cased
// role is mapped to the canonical session role here, the single
// boundary where the two enumerations meet; the session token carries
// only the mapped role.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	u, err := h.Users.Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, store.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	role, err := rbac.FromUserRole(u.Role)
	if err != nil {
		// A seeded or edited user with an unmapped role cannot form a
		// session; fail closed.
		return c.JSON(http.StatusForbidden, echo.Map{"error": "role has no session mapping"})
	}

	tok, err := utils.NewAccessToken(h.JWTSecret, u.ID, u.Name, string(role), h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
		"user": echo.Map{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  role,
		},
	})
}

// Logout handles POST /v1/auth/logout. Sessions are stateless JWTs, so
// the server has nothing to invalidate; clients drop their stored
// token. The endpoint exists so the client's logout flow has a
// uniform shape.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/me and returns the authenticated session's
// identity along with its navigation menu.
func (h *AuthHandler) Me(c echo.Context) error {
	role, ok := middleware.SessionRole(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":         c.Get(middleware.CtxUserID),
		"name":       middleware.SessionName(c),
		"role":       role,
		"navigation": rbac.NavigationItems(role),
	})
}

// Navigation handles GET /v1/navigation, returning the role's filtered
// menu in master-list order.
func (h *AuthHandler) Navigation(c echo.Context) error {
	role, ok := middleware.SessionRole(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session"})
	}
	return c.JSON(http.StatusOK, rbac.NavigationItems(role))
}
