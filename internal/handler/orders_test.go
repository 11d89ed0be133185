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
	"github.com/iliyamo/restaurant-pos/internal/rbac"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

func orderRequest(role rbac.Role, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxRole, role)
	c.Set(middleware.CtxName, "Tomasz")
	return c, rec
}

func TestKitchenStaffCannotCreateOrders(t *testing.T) {
	h := &handler.OrderHandler{Orders: store.NewOrderStore(nil, nil)}
	c, rec := orderRequest(rbac.KitchenStaff, http.MethodPost, "/v1/orders",
		`{"table_number":1,"items":[{"menu_item_id":"MEN-001","name":"Pizza","price":11.5,"quantity":1}]}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, h.Orders.Orders())
}

func TestServerCreatesOrderWithSessionName(t *testing.T) {
	h := &handler.OrderHandler{Orders: store.NewOrderStore(nil, nil)}
	c, rec := orderRequest(rbac.Server, http.MethodPost, "/v1/orders",
		`{"table_number":3,"items":[{"menu_item_id":"MEN-001","name":"Pizza","price":11.5,"quantity":2}]}`)
	c.Set(middleware.CtxName, "Dana Lee")

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	orders := h.Orders.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "Dana Lee", orders[0].ServerName)
	assert.InDelta(t, 23.0, orders[0].Total, 1e-9)
}

func TestStatusPaidRejectedOutsidePaymentFlow(t *testing.T) {
	s := store.NewOrderStore(nil, nil)
	o := s.Create(store.OrderDraft{TableNumber: 1, Items: nil})
	h := &handler.OrderHandler{Orders: s}

	c, rec := orderRequest(rbac.Server, http.MethodPatch, "/v1/orders/"+o.ID+"/status", `{"status":"paid"}`)
	c.SetParamNames("id")
	c.SetParamValues(o.ID)

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRequiresAdministrator(t *testing.T) {
	s := store.NewOrderStore(nil, nil)
	o := s.Create(store.OrderDraft{TableNumber: 1})
	h := &handler.OrderHandler{Orders: s}

	c, rec := orderRequest(rbac.Manager, http.MethodDelete, "/v1/orders/"+o.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(o.ID)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = orderRequest(rbac.Administrator, http.MethodDelete, "/v1/orders/"+o.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(o.ID)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
