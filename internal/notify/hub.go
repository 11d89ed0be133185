package notify

import "sync"

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls further behind than this loses events rather than blocking
// publishers.
const subscriberBuffer = 16

// Hub fans published events out to every current subscriber. Each
// subscriber receives only events published after it subscribed; there
// is no replay and no delivery guarantee for slow consumers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub returns an empty hub ready for subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Publish delivers the event to all current subscribers without
// blocking. Events for subscribers with a full buffer are dropped.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default: // slow subscriber, drop
		}
	}
}

// Subscribe registers a new subscriber and returns its event channel
// together with a cancel function. Cancel must be called when the
// subscriber goes away; it closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
