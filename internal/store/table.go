package store

import (
	"errors"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
)

// ErrTableNotFound is returned when a table lookup yields no record.
var ErrTableNotFound = errors.New("table not found")

// ErrTableBusy is returned when an order is assigned to a table that
// already references an active order.
var ErrTableBusy = errors.New("table already has an active order")

// TableStore owns the floor tables. At most one active order reference
// is held per table.
type TableStore struct {
	mu     sync.Mutex
	tables []model.Table
	seq    int
}

// NewTableStore builds a store over the given initial tables.
func NewTableStore(initial []model.Table) *TableStore {
	ids := make([]string, 0, len(initial))
	for _, t := range initial {
		ids = append(ids, t.ID)
	}
	return &TableStore{
		tables: append([]model.Table(nil), initial...),
		seq:    nextSeq(ids),
	}
}

// Create assigns an id and appends the table. New tables start
// available unless a status is supplied.
func (s *TableStore) Create(t model.Table) model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = seqID("TBL", s.seq)
	s.seq++
	if t.Status == "" {
		t.Status = model.TableAvailable
	}
	s.tables = append(s.tables, t)
	return t
}

// UpdateStatus moves the table to the given floor state. Leaving the
// occupied state clears the active order reference; leaving reserved
// clears the reservation metadata.
func (s *TableStore) UpdateStatus(id string, status model.TableStatus) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Table{}, ErrTableNotFound
	}
	t := &s.tables[i]
	t.Status = status
	if status != model.TableOccupied {
		t.OrderID = ""
	}
	if status != model.TableReserved {
		t.Reservation = nil
	}
	return *t, nil
}

// AssignOrder attaches an active order to the table and marks it
// occupied. A table holding another active order rejects the
// assignment.
func (s *TableStore) AssignOrder(id, orderID string) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Table{}, ErrTableNotFound
	}
	t := &s.tables[i]
	if t.OrderID != "" && t.OrderID != orderID {
		return model.Table{}, ErrTableBusy
	}
	t.OrderID = orderID
	t.Status = model.TableOccupied
	return *t, nil
}

// ClearOrder detaches the active order and moves the table to
// cleaning, the next state in the floor cycle.
func (s *TableStore) ClearOrder(id string) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Table{}, ErrTableNotFound
	}
	t := &s.tables[i]
	t.OrderID = ""
	t.Status = model.TableCleaning
	return *t, nil
}

// Reserve places reservation metadata on the table and marks it
// reserved.
func (s *TableStore) Reserve(id, name string, at time.Time) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Table{}, ErrTableNotFound
	}
	t := &s.tables[i]
	t.Status = model.TableReserved
	t.Reservation = &model.Reservation{Name: name, Time: at}
	return *t, nil
}

// Delete removes the table.
func (s *TableStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrTableNotFound
	}
	s.tables = append(s.tables[:i], s.tables[i+1:]...)
	return nil
}

// Get returns the table with the given id.
func (s *TableStore) Get(id string) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Table{}, ErrTableNotFound
	}
	return copyTable(s.tables[i]), nil
}

// Tables returns a snapshot of all tables ordered by table number.
func (s *TableStore) Tables() []model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Table, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, copyTable(t))
	}
	return out
}

func (s *TableStore) index(id string) int {
	for i := range s.tables {
		if s.tables[i].ID == id {
			return i
		}
	}
	return -1
}

func copyTable(t model.Table) model.Table {
	if t.Reservation != nil {
		r := *t.Reservation
		t.Reservation = &r
	}
	return t
}
