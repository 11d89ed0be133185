package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

const secret = "test-secret"

func ctxWithRole(role rbac.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxRole, role)
	return c, rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestRequirePageAllows(t *testing.T) {
	c, rec := ctxWithRole(rbac.Server)
	err := middleware.RequirePage("tables")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePageForbidsWithoutGrant(t *testing.T) {
	c, rec := ctxWithRole(rbac.KitchenStaff)
	err := middleware.RequirePage("tables")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePageWithoutSessionIsUnauthorized(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.RequirePage("orders")(okHandler)(c)
	require.NoError(t, err)
	// Distinct from 403: no session at all.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInjectsSession(t *testing.T) {
	tok, err := utils.NewAccessToken(secret, "USR-003", "Dana Lee", string(rbac.Server), 5)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = middleware.JWTAuth(secret)(func(c echo.Context) error {
		role, ok := middleware.SessionRole(c)
		assert.True(t, ok)
		assert.Equal(t, rbac.Server, role)
		assert.Equal(t, "Dana Lee", middleware.SessionName(c))
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.JWTAuth(secret)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsUnknownRoleClaim(t *testing.T) {
	tok, err := utils.NewAccessToken(secret, "USR-009", "Ghost", "Sommelier", 5)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = middleware.JWTAuth(secret)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestActionAllowed(t *testing.T) {
	c, _ := ctxWithRole(rbac.Manager)
	assert.False(t, middleware.ActionAllowed(c, "orders", "delete"))
	assert.True(t, middleware.ActionAllowed(c, "orders", "create"))
}
