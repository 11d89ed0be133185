package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/handler"
	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

func authFixture(t *testing.T) *handler.AuthHandler {
	t.Helper()
	hash, err := utils.HashPassword("s3cret", 4)
	require.NoError(t, err)
	users := store.NewUserStore([]model.User{
		{ID: "USR-001", Name: "Dana Lee", Email: "server@pos.local", Role: model.UserServer, Active: true, PasswordHash: hash},
		{ID: "USR-002", Name: "Old Account", Email: "gone@pos.local", Role: model.UserServer, Active: false, PasswordHash: hash},
	})
	return &handler.AuthHandler{Users: users, JWTSecret: "test-secret", TTLMin: 5}
}

func postLogin(t *testing.T, h *handler.AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	return rec
}

func TestLoginMapsUserRoleToSessionRole(t *testing.T) {
	rec := postLogin(t, authFixture(t), `{"email":"server@pos.local","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	// The lower-cased user role "server" becomes the session role.
	assert.Equal(t, "Server", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	rec := postLogin(t, authFixture(t), `{"email":"server@pos.local","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginInactiveAccount(t *testing.T) {
	rec := postLogin(t, authFixture(t), `{"email":"gone@pos.local","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	rec := postLogin(t, authFixture(t), `{"email":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
