package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// ReportHandler derives read-only summaries from the order and payment
// stores. Responses are cached by the Redis middleware when available.
type ReportHandler struct {
	Orders   *store.OrderStore
	Payments *store.PaymentStore
}

// SalesReport is the shape returned by GET /v1/reports/sales.
type SalesReport struct {
	OrderCount     int                `json:"order_count"`
	PaidOrderCount int                `json:"paid_order_count"`
	GrossRevenue   float64            `json:"gross_revenue"` // completed payments incl. refunds
	TipsCollected  float64            `json:"tips_collected"`
	RefundTotal    float64            `json:"refund_total"` // absolute value of refunds
	ByStatus       map[string]int     `json:"orders_by_status"`
	ByMethod       map[string]float64 `json:"revenue_by_method"`
}

// Sales handles GET /v1/reports/sales.
func (h *ReportHandler) Sales(c echo.Context) error {
	rep := SalesReport{
		ByStatus: make(map[string]int),
		ByMethod: make(map[string]float64),
	}

	for _, o := range h.Orders.Orders() {
		rep.OrderCount++
		rep.ByStatus[string(o.Status)]++
		if o.Paid {
			rep.PaidOrderCount++
		}
	}
	for _, p := range h.Payments.Payments() {
		if p.Status != model.PaymentCompleted && p.Status != model.PaymentRefunded {
			continue
		}
		rep.GrossRevenue += p.Amount
		rep.TipsCollected += p.Tip
		rep.ByMethod[string(p.Method)] += p.Amount
		if p.Amount < 0 {
			rep.RefundTotal += -p.Amount
		}
	}
	return c.JSON(http.StatusOK, rep)
}
