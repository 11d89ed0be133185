package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// OrderHandler exposes the order lifecycle: create, list, status
// update, split, merge and delete.
type OrderHandler struct {
	Orders *store.OrderStore
}

// List handles GET /v1/orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Orders.Orders())
}

// Get handles GET /v1/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	o, err := h.Orders.Get(c.Param("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /v1/orders. The server name defaults to the
// session's display name when the client omits it.
func (h *OrderHandler) Create(c echo.Context) error {
	if !middleware.ActionAllowed(c, "orders", "create") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var body struct {
		TableNumber int               `json:"table_number"`
		ServerName  string            `json:"server_name"`
		Items       []model.OrderItem `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TableNumber <= 0 || len(body.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_number and at least one item are required"})
	}
	for _, it := range body.Items {
		if it.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "item quantities must be positive"})
		}
	}
	if body.ServerName == "" {
		body.ServerName = middleware.SessionName(c)
	}

	o := h.Orders.Create(store.OrderDraft{
		TableNumber: body.TableNumber,
		ServerName:  body.ServerName,
		Items:       body.Items,
	})
	return c.JSON(http.StatusCreated, o)
}

// UpdateStatus handles PATCH /v1/orders/:id/status. Any known status
// value is accepted except "paid", which is only reachable through the
// payment flow.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	if !middleware.ActionAllowed(c, "orders", "status") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var body struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	switch body.Status {
	case model.OrderPending, model.OrderPreparing, model.OrderReady,
		model.OrderServed, model.OrderCompleted:
	case model.OrderPaid:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status \"paid\" is set by the payment flow"})
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}

	o, err := h.Orders.UpdateStatus(c.Param("id"), body.Status)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Split handles POST /v1/orders/:id/split, moving the named item ids
// onto a new order.
func (h *OrderHandler) Split(c echo.Context) error {
	if !middleware.ActionAllowed(c, "orders", "edit") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var body struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.ItemIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item_ids is required"})
	}

	o, err := h.Orders.Split(c.Param("id"), body.ItemIDs)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

// Merge handles POST /v1/orders/merge.
func (h *OrderHandler) Merge(c echo.Context) error {
	if !middleware.ActionAllowed(c, "orders", "edit") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var body struct {
		TargetID string `json:"target_id"`
		SourceID string `json:"source_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TargetID == "" || body.SourceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "target_id and source_id are required"})
	}

	o, err := h.Orders.Merge(body.TargetID, body.SourceID)
	if err != nil {
		if errors.Is(err, store.ErrSameOrder) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return orderError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Delete handles DELETE /v1/orders/:id, an administrator-only action.
func (h *OrderHandler) Delete(c echo.Context) error {
	if !middleware.ActionAllowed(c, "orders", "delete") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err := h.Orders.Delete(c.Param("id")); err != nil {
		return orderError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func orderError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrOrderNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "order operation failed"})
}
