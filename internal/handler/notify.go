package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/notify"
)

// NotifyHandler implements the relay wire contract: a long-lived SSE
// stream per subscriber and a publish endpoint that broadcasts one
// event to every connected subscriber. The relay itself never filters
// by role; the role field is advisory metadata for consumers.
type NotifyHandler struct {
	Hub *notify.Hub
	Pub notify.Publisher
}

// Stream handles GET /v1/notifications/stream. Each published event is
// delivered as one "data: <JSON>" frame; there are no event ids and no
// replay of history. The stream ends when the client disconnects.
func (h *NotifyHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// Publish handles POST /v1/notifications. The body must be one JSON
// event object; it is broadcast verbatim to every current subscriber.
// Malformed JSON is the only error case.
func (h *NotifyHandler) Publish(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable body"})
	}
	var ev notify.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed event JSON"})
	}
	h.Pub.Publish(ev)
	return c.NoContent(http.StatusNoContent)
}
