package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// TableHandler exposes floor management: table CRUD, the status cycle,
// reservations and order assignment.
type TableHandler struct {
	Tables *store.TableStore
	Orders *store.OrderStore
}

// List handles GET /v1/tables.
func (h *TableHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Tables.Tables())
}

// Create handles POST /v1/tables.
func (h *TableHandler) Create(c echo.Context) error {
	var body struct {
		Number   int `json:"number"`
		Capacity int `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Number <= 0 || body.Capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number and capacity must be positive"})
	}
	t := h.Tables.Create(model.Table{Number: body.Number, Capacity: body.Capacity})
	return c.JSON(http.StatusCreated, t)
}

// UpdateStatus handles PATCH /v1/tables/:id/status.
func (h *TableHandler) UpdateStatus(c echo.Context) error {
	var body struct {
		Status model.TableStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	switch body.Status {
	case model.TableAvailable, model.TableOccupied, model.TableReserved, model.TableCleaning:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown table status"})
	}
	t, err := h.Tables.UpdateStatus(c.Param("id"), body.Status)
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// AssignOrder handles POST /v1/tables/:id/order, attaching an existing
// order to the table.
func (h *TableHandler) AssignOrder(c echo.Context) error {
	var body struct {
		OrderID string `json:"order_id"`
	}
	if err := c.Bind(&body); err != nil || body.OrderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id is required"})
	}
	if _, err := h.Orders.Get(body.OrderID); err != nil {
		return orderError(c, err)
	}
	t, err := h.Tables.AssignOrder(c.Param("id"), body.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrTableBusy) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table already has an active order"})
		}
		return tableError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// ClearOrder handles DELETE /v1/tables/:id/order, detaching the active
// order and moving the table into cleaning.
func (h *TableHandler) ClearOrder(c echo.Context) error {
	t, err := h.Tables.ClearOrder(c.Param("id"))
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Reserve handles POST /v1/tables/:id/reservation.
func (h *TableHandler) Reserve(c echo.Context) error {
	var body struct {
		Name string    `json:"name"`
		Time time.Time `json:"time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" || body.Time.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and time are required"})
	}
	t, err := h.Tables.Reserve(c.Param("id"), body.Name, body.Time)
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /v1/tables/:id.
func (h *TableHandler) Delete(c echo.Context) error {
	if err := h.Tables.Delete(c.Param("id")); err != nil {
		return tableError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func tableError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrTableNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "table operation failed"})
}
