package store

import (
	"errors"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
)

// ErrMenuItemNotFound is returned when a menu item lookup yields no
// record.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuStore owns the menu item collection. Orders capture menu data by
// value, so edits and deletions here never touch historical orders.
type MenuStore struct {
	mu    sync.Mutex
	items []model.MenuItem
	seq   int

	Now func() time.Time
}

// NewMenuStore builds a store over the given initial items.
func NewMenuStore(initial []model.MenuItem) *MenuStore {
	ids := make([]string, 0, len(initial))
	for _, it := range initial {
		ids = append(ids, it.ID)
	}
	return &MenuStore{
		items: append([]model.MenuItem(nil), initial...),
		seq:   nextSeq(ids),
		Now:   utcNow,
	}
}

// Create assigns an id and timestamps and appends the item.
func (s *MenuStore) Create(item model.MenuItem) model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = seqID("MEN", s.seq)
	s.seq++
	now := s.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.items = append(s.items, item)
	return item
}

// Update replaces the editable fields of an existing item.
func (s *MenuStore) Update(id string, item model.MenuItem) (model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.MenuItem{}, ErrMenuItemNotFound
	}
	cur := &s.items[i]
	cur.Name = item.Name
	cur.Description = item.Description
	cur.Price = item.Price
	cur.Category = item.Category
	cur.Available = item.Available
	cur.UpdatedAt = s.Now()
	return *cur, nil
}

// SetAvailability toggles the availability flag independently of a
// full edit.
func (s *MenuStore) SetAvailability(id string, available bool) (model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.MenuItem{}, ErrMenuItemNotFound
	}
	s.items[i].Available = available
	s.items[i].UpdatedAt = s.Now()
	return s.items[i], nil
}

// Delete removes the item.
func (s *MenuStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrMenuItemNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Get returns the item with the given id.
func (s *MenuStore) Get(id string) (model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.MenuItem{}, ErrMenuItemNotFound
	}
	return s.items[i], nil
}

// Items returns a snapshot of all menu items in insertion order.
func (s *MenuStore) Items() []model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MenuItem(nil), s.items...)
}

func (s *MenuStore) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
