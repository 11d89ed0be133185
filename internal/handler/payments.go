package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// PaymentHandler exposes payment processing and refunds. Field
// validation lives here; the store only sees well-formed requests.
type PaymentHandler struct {
	Payments *store.PaymentStore
	Orders   *store.OrderStore
}

// List handles GET /v1/payments.
func (h *PaymentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Payments.Payments())
}

// Process handles POST /v1/payments. Cash must cover the order total
// (change is computed server-side), card payments need a four-digit
// last4, mobile is always accepted.
func (h *PaymentHandler) Process(c echo.Context) error {
	var body struct {
		OrderID       string              `json:"order_id"`
		Amount        float64             `json:"amount"`
		Method        model.PaymentMethod `json:"method"`
		Tip           float64             `json:"tip"`
		CardLast4     string              `json:"card_last4"`
		TransactionID string              `json:"transaction_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.OrderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id is required"})
	}

	order, err := h.Orders.Get(body.OrderID)
	if err != nil {
		return orderError(c, err)
	}

	var change float64
	switch body.Method {
	case model.PayCash:
		if body.Amount < order.Total {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cash amount does not cover the order total"})
		}
		change = body.Amount - order.Total
	case model.PayCard:
		if len(body.CardLast4) != 4 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "card_last4 must be four digits"})
		}
	case model.PayMobile:
		// always accepted
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment method"})
	}
	if body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	p, err := h.Payments.Process(store.PaymentRequest{
		OrderID:       body.OrderID,
		Amount:        body.Amount,
		Method:        body.Method,
		Tip:           body.Tip,
		Change:        change,
		CardLast4:     body.CardLast4,
		TransactionID: body.TransactionID,
		ProcessedBy:   middleware.SessionName(c),
	})
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Refund handles POST /v1/payments/:id/refund.
func (h *PaymentHandler) Refund(c echo.Context) error {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	refund, err := h.Payments.Refund(c.Param("id"), body.Amount)
	if err != nil {
		if errors.Is(err, store.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "refund failed"})
	}
	return c.JSON(http.StatusCreated, refund)
}
