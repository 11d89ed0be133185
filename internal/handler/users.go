package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

// UserHandler exposes staff account management.
type UserHandler struct {
	Users      *store.UserStore
	BcryptCost int
}

type userBody struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     model.UserRole `json:"role"`
	Active   *bool          `json:"active"`
	Password string         `json:"password"`
}

func (b userBody) validate(requirePassword bool) string {
	if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.Email) == "" {
		return "name and email are required"
	}
	switch b.Role {
	case model.UserAdmin, model.UserManager, model.UserServer, model.UserKitchen:
	default:
		return "unknown role"
	}
	if requirePassword && b.Password == "" {
		return "password is required"
	}
	return ""
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Users.Users())
}

// Create handles POST /v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	var body userBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(true); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	hash, err := utils.HashPassword(body.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not hash password"})
	}
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	u, err := h.Users.Create(model.User{
		Name:         body.Name,
		Email:        body.Email,
		Role:         body.Role,
		Active:       active,
		PasswordHash: hash,
	})
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// Update handles PUT /v1/users/:id. Password is optional; when absent
// the current hash is kept.
func (h *UserHandler) Update(c echo.Context) error {
	var body userBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(false); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	var hash string
	if body.Password != "" {
		var err error
		hash, err = utils.HashPassword(body.Password, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not hash password"})
		}
	}
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	u, err := h.Users.Update(c.Param("id"), model.User{
		Name:         body.Name,
		Email:        body.Email,
		Role:         body.Role,
		Active:       active,
		PasswordHash: hash,
	})
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Deactivate handles POST /v1/users/:id/deactivate.
func (h *UserHandler) Deactivate(c echo.Context) error {
	u, err := h.Users.Deactivate(c.Param("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.Users.Delete(c.Param("id")); err != nil {
		return userError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func userError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case errors.Is(err, store.ErrEmailTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "user operation failed"})
	}
}
