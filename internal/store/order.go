package store

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/notify"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
)

// ErrOrderNotFound is returned when an order lookup yields no record.
var ErrOrderNotFound = errors.New("order not found")

// ErrSameOrder is returned when a merge names the same order as both
// target and source.
var ErrSameOrder = errors.New("cannot merge an order into itself")

// OrderStore owns the in-memory order collection and the operations on
// it: create, status update, split, merge. Totals are recomputed on
// every mutation that touches items so the derived-total invariant
// always holds on read.
type OrderStore struct {
	mu      sync.Mutex
	orders  []model.Order
	seq     int
	itemSeq int
	pub     notify.Publisher

	// Now supplies timestamps; tests override it for deterministic
	// creation times.
	Now func() time.Time
}

// NewOrderStore builds a store over the given initial orders. The next
// order and item sequence numbers are derived from the seeded ids.
func NewOrderStore(initial []model.Order, pub notify.Publisher) *OrderStore {
	var orderIDs, itemIDs []string
	for _, o := range initial {
		orderIDs = append(orderIDs, o.ID)
		for _, it := range o.Items {
			itemIDs = append(itemIDs, it.ID)
		}
	}
	if pub == nil {
		pub = notify.Discard{}
	}
	return &OrderStore{
		orders:  append([]model.Order(nil), initial...),
		seq:     nextSeq(orderIDs),
		itemSeq: nextSeq(itemIDs),
		pub:     pub,
		Now:     utcNow,
	}
}

// OrderDraft carries the caller-supplied fields of a new order.
type OrderDraft struct {
	TableNumber int
	ServerName  string
	Items       []model.OrderItem
}

// Create assigns a display-formatted sequential id and a creation
// timestamp, computes the total from the draft items, appends the order
// and announces it to the kitchen. The persisted order is returned.
func (s *OrderStore) Create(draft OrderDraft) model.Order {
	s.mu.Lock()
	order := model.Order{
		ID:          seqID("ORD", s.seq),
		TableNumber: draft.TableNumber,
		ServerName:  draft.ServerName,
		Status:      model.OrderPending,
		CreatedAt:   s.Now(),
	}
	s.seq++
	for _, it := range draft.Items {
		if it.ID == "" {
			it.ID = seqID("ITM", s.itemSeq)
			s.itemSeq++
		}
		order.Items = append(order.Items, it)
	}
	order.Total = order.ItemTotal()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.pub.Publish(notify.Event{
		Type:    notify.TypeNewOrder,
		Message: "New order " + order.ID + " for table " + strconv.Itoa(order.TableNumber),
		Role:    string(rbac.KitchenStaff),
	})
	return copyOrder(order)
}

// UpdateStatus overwrites the order's status in place. No transition
// table is enforced here; legality of a transition is the caller's
// concern, matching the permissive reference behavior.
func (s *OrderStore) UpdateStatus(id string, status model.OrderStatus) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Order{}, ErrOrderNotFound
	}
	s.orders[i].Status = status
	return copyOrder(s.orders[i]), nil
}

// Split removes the named item ids from the source order and moves them
// into a brand-new order that inherits the source's table number,
// server name and status. Both totals are recomputed. Item ids not
// present in the source are silently skipped. The new order is
// returned.
func (s *OrderStore) Split(orderID string, itemIDs []string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(orderID)
	if i < 0 {
		return model.Order{}, ErrOrderNotFound
	}
	wanted := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}

	src := &s.orders[i]
	var kept, moved []model.OrderItem
	for _, it := range src.Items {
		if wanted[it.ID] {
			moved = append(moved, it)
		} else {
			kept = append(kept, it)
		}
	}
	src.Items = kept
	src.Total = src.ItemTotal()

	split := model.Order{
		ID:          seqID("ORD", s.seq),
		TableNumber: src.TableNumber,
		ServerName:  src.ServerName,
		Status:      src.Status,
		Items:       moved,
		CreatedAt:   s.Now(),
	}
	s.seq++
	split.Total = split.ItemTotal()
	s.orders = append(s.orders, split)
	return copyOrder(split), nil
}

// Merge appends all of the source order's items onto the target, with
// no dedup across differing instruction text, recomputes the target's
// total and deletes the source from the store. The merged target is
// returned.
func (s *OrderStore) Merge(targetID, sourceID string) (model.Order, error) {
	if targetID == sourceID {
		return model.Order{}, ErrSameOrder
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ti := s.index(targetID)
	si := s.index(sourceID)
	if ti < 0 || si < 0 {
		return model.Order{}, ErrOrderNotFound
	}
	s.orders[ti].Items = append(s.orders[ti].Items, s.orders[si].Items...)
	s.orders[ti].Total = s.orders[ti].ItemTotal()
	merged := copyOrder(s.orders[ti])
	s.orders = append(s.orders[:si], s.orders[si+1:]...)
	return merged, nil
}

// Get returns a copy of the order with the given id.
func (s *OrderStore) Get(id string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Order{}, ErrOrderNotFound
	}
	return copyOrder(s.orders[i]), nil
}

// Orders returns a snapshot of all orders, newest first by creation
// time. The snapshot shares no memory with the store.
func (s *OrderStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}

// Delete removes the order entirely. Reserved for administrators at
// the HTTP layer.
func (s *OrderStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	return nil
}

// markPaid stamps the payment id and flips the order to paid. It is
// invoked by the PaymentStore before the payment record is appended so
// the two writes succeed or fail together.
func (s *OrderStore) markPaid(id, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	s.orders[i].Status = model.OrderPaid
	s.orders[i].Paid = true
	s.orders[i].PaymentID = paymentID
	return nil
}

// index returns the position of the order with the given id, or -1.
// Callers must hold the mutex.
func (s *OrderStore) index(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func copyOrder(o model.Order) model.Order {
	o.Items = append([]model.OrderItem(nil), o.Items...)
	return o
}
