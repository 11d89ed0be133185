// Package notify implements the best-effort notification channel: an
// in-process fan-out hub behind a small Publisher interface, plus an
// optional RabbitMQ bridge for multi-instance deployments. Delivery is
// advisory; no publish ever fails a business operation.
package notify

// Event is the wire shape broadcast to subscribers. Role, when set, is
// advisory metadata for consumers to filter on; the channel itself does
// not filter by role.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}

// Event types published by the stores.
const (
	TypeNewOrder = "new_order"
	TypeLowStock = "low_stock"
)

// Publisher is the dependency the stores hold. Implementations must be
// fire-and-forget: Publish never blocks meaningfully and never reports
// failure to the caller.
type Publisher interface {
	Publish(Event)
}

// Discard is a Publisher that drops every event. Useful in tests that
// do not care about notifications.
type Discard struct{}

func (Discard) Publish(Event) {}
