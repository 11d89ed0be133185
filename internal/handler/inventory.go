package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// InventoryHandler exposes stock management. Stock updates go through
// a dedicated endpoint so the low-stock trigger has a single path.
type InventoryHandler struct {
	Inventory *store.InventoryStore
}

type inventoryBody struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
}

func (b inventoryBody) validate() string {
	if strings.TrimSpace(b.Name) == "" {
		return "name is required"
	}
	if b.Stock < 0 || b.MinStock < 0 {
		return "stock levels must not be negative"
	}
	return ""
}

// List handles GET /v1/inventory.
func (h *InventoryHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Inventory.Items())
}

// Create handles POST /v1/inventory.
func (h *InventoryHandler) Create(c echo.Context) error {
	var body inventoryBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	item := h.Inventory.Create(model.InventoryItem{
		Name:        body.Name,
		Category:    body.Category,
		Stock:       body.Stock,
		MinStock:    body.MinStock,
		Unit:        body.Unit,
		CostPerUnit: body.CostPerUnit,
		Supplier:    body.Supplier,
	})
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/inventory/:id; stock is not editable here.
func (h *InventoryHandler) Update(c echo.Context) error {
	var body inventoryBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	item, err := h.Inventory.Update(c.Param("id"), model.InventoryItem{
		Name:        body.Name,
		Category:    body.Category,
		MinStock:    body.MinStock,
		Unit:        body.Unit,
		CostPerUnit: body.CostPerUnit,
		Supplier:    body.Supplier,
	})
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateStock handles PATCH /v1/inventory/:id/stock, the call that may
// raise the low-stock notification.
func (h *InventoryHandler) UpdateStock(c echo.Context) error {
	if !middleware.ActionAllowed(c, "inventory", "edit") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var body struct {
		Stock *int `json:"stock"`
	}
	if err := c.Bind(&body); err != nil || body.Stock == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock is required"})
	}
	if *body.Stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock must not be negative"})
	}
	item, err := h.Inventory.UpdateStock(c.Param("id"), *body.Stock)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/inventory/:id.
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.Inventory.Delete(c.Param("id")); err != nil {
		return inventoryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func inventoryError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrInventoryItemNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "inventory item not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "inventory operation failed"})
}
