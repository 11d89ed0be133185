package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/notify"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
)

// ErrInventoryItemNotFound is returned when an inventory lookup yields
// no record.
var ErrInventoryItemNotFound = errors.New("inventory item not found")

// InventoryStore owns stocked supplies and raises the low-stock alert
// when a stock update lands at or below an item's minimum threshold.
type InventoryStore struct {
	mu    sync.Mutex
	items []model.InventoryItem
	seq   int
	pub   notify.Publisher

	Now func() time.Time
}

// NewInventoryStore builds a store over the given initial items.
func NewInventoryStore(initial []model.InventoryItem, pub notify.Publisher) *InventoryStore {
	ids := make([]string, 0, len(initial))
	for _, it := range initial {
		ids = append(ids, it.ID)
	}
	if pub == nil {
		pub = notify.Discard{}
	}
	return &InventoryStore{
		items: append([]model.InventoryItem(nil), initial...),
		seq:   nextSeq(ids),
		pub:   pub,
		Now:   utcNow,
	}
}

// Create assigns an id and appends the item.
func (s *InventoryStore) Create(item model.InventoryItem) model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = seqID("INV", s.seq)
	s.seq++
	if item.LastRestocked.IsZero() {
		item.LastRestocked = s.Now()
	}
	s.items = append(s.items, item)
	return item
}

// UpdateStock overwrites the item's stock level and restock timestamp.
// Exactly one low-stock notification is published per call that lands
// at or below the minimum threshold, regardless of how far below it
// falls; restoring stock above the threshold publishes nothing.
func (s *InventoryStore) UpdateStock(id string, stock int) (model.InventoryItem, error) {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return model.InventoryItem{}, ErrInventoryItemNotFound
	}
	s.items[i].Stock = stock
	s.items[i].LastRestocked = s.Now()
	item := s.items[i]
	s.mu.Unlock()

	if item.Low() {
		s.pub.Publish(notify.Event{
			Type: notify.TypeLowStock,
			Message: "Low stock: " + item.Name + " (" + strconv.Itoa(item.Stock) +
				" " + item.Unit + " left)",
			Role: string(rbac.Manager),
		})
	}
	return item, nil
}

// Update replaces the editable fields of an existing item without
// touching its stock level.
func (s *InventoryStore) Update(id string, item model.InventoryItem) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.InventoryItem{}, ErrInventoryItemNotFound
	}
	cur := &s.items[i]
	cur.Name = item.Name
	cur.Category = item.Category
	cur.MinStock = item.MinStock
	cur.Unit = item.Unit
	cur.CostPerUnit = item.CostPerUnit
	cur.Supplier = item.Supplier
	return *cur, nil
}

// Delete removes the item.
func (s *InventoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrInventoryItemNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Get returns the item with the given id.
func (s *InventoryStore) Get(id string) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.InventoryItem{}, ErrInventoryItemNotFound
	}
	return s.items[i], nil
}

// Items returns a snapshot of all inventory items.
func (s *InventoryStore) Items() []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.InventoryItem(nil), s.items...)
}

func (s *InventoryStore) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
