package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// MenuHandler exposes menu management.
type MenuHandler struct {
	Menu *store.MenuStore
}

type menuBody struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

func (b menuBody) validate() string {
	if strings.TrimSpace(b.Name) == "" {
		return "name is required"
	}
	if b.Price < 0 {
		return "price must not be negative"
	}
	return ""
}

func (b menuBody) toModel() model.MenuItem {
	available := true
	if b.Available != nil {
		available = *b.Available
	}
	return model.MenuItem{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		Available:   available,
	}
}

// List handles GET /v1/menu.
func (h *MenuHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Menu.Items())
}

// Create handles POST /v1/menu.
func (h *MenuHandler) Create(c echo.Context) error {
	var body menuBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	return c.JSON(http.StatusCreated, h.Menu.Create(body.toModel()))
}

// Update handles PUT /v1/menu/:id.
func (h *MenuHandler) Update(c echo.Context) error {
	var body menuBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	item, err := h.Menu.Update(c.Param("id"), body.toModel())
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// SetAvailability handles PATCH /v1/menu/:id/availability, the quick
// toggle used to 86 an item.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	var body struct {
		Available *bool `json:"available"`
	}
	if err := c.Bind(&body); err != nil || body.Available == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available is required"})
	}
	item, err := h.Menu.SetAvailability(c.Param("id"), *body.Available)
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/menu/:id.
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.Menu.Delete(c.Param("id")); err != nil {
		return menuError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func menuError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrMenuItemNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "menu operation failed"})
}
