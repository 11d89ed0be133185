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
	"github.com/iliyamo/restaurant-pos/internal/notify"
)

func TestPublishBroadcastsToSubscriber(t *testing.T) {
	hub := notify.NewHub()
	h := &handler.NotifyHandler{Hub: hub, Pub: hub}

	ch, cancel := hub.Subscribe()
	defer cancel()

	e := echo.New()
	body := `{"type":"toast","message":"86 the salmon","role":"Server"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Publish(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	ev := <-ch
	assert.Equal(t, "toast", ev.Type)
	assert.Equal(t, "86 the salmon", ev.Message)
	assert.Equal(t, "Server", ev.Role)
}

func TestPublishRejectsMalformedJSON(t *testing.T) {
	hub := notify.NewHub()
	h := &handler.NotifyHandler{Hub: hub, Pub: hub}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	require.NoError(t, h.Publish(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
