package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/handler"
	"github.com/iliyamo/restaurant-pos/internal/middleware"
	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

func paymentHandlerFixture() (*handler.PaymentHandler, model.Order) {
	orders := store.NewOrderStore(nil, nil)
	payments := store.NewPaymentStore(nil, orders)
	order := orders.Create(store.OrderDraft{
		TableNumber: 2,
		ServerName:  "Dana",
		Items:       []model.OrderItem{{MenuItemID: "MEN-002", Name: "Burger", Price: 10, Quantity: 2}},
	})
	return &handler.PaymentHandler{Payments: payments, Orders: orders}, order
}

func postPayment(t *testing.T, h *handler.PaymentHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxRole, rbac.Server)
	c.Set(middleware.CtxName, "Dana")
	require.NoError(t, h.Process(c))
	return rec
}

func TestProcessCashUnderTotalRejected(t *testing.T) {
	h, order := paymentHandlerFixture()
	rec := postPayment(t, h, `{"order_id":"`+order.ID+`","amount":5,"method":"cash"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Validation failures never reach the store.
	assert.Empty(t, h.Payments.Payments())
}

func TestProcessCashComputesChange(t *testing.T) {
	h, order := paymentHandlerFixture()
	rec := postPayment(t, h, `{"order_id":"`+order.ID+`","amount":25,"method":"cash"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	ps := h.Payments.Payments()
	require.Len(t, ps, 1)
	assert.InDelta(t, 5.0, ps[0].Change, 1e-9)
	assert.Equal(t, "Dana", ps[0].ProcessedBy)
}

func TestProcessCardNeedsLast4(t *testing.T) {
	h, order := paymentHandlerFixture()
	rec := postPayment(t, h, `{"order_id":"`+order.ID+`","amount":20,"method":"card"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessUnknownOrderIs404(t *testing.T) {
	h, _ := paymentHandlerFixture()
	rec := postPayment(t, h, `{"order_id":"ORD-404","amount":20,"method":"mobile"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, h.Payments.Payments())
}
