package store

import (
	"errors"
	"sync"

	"github.com/iliyamo/restaurant-pos/internal/model"
)

// ErrShiftNotFound is returned when a shift lookup yields no record.
var ErrShiftNotFound = errors.New("shift not found")

// ShiftStore owns the scheduled work periods. The user's role is
// duplicated onto the shift at creation time; overlapping shifts for
// one user are deliberately not rejected.
type ShiftStore struct {
	mu     sync.Mutex
	shifts []model.Shift
	seq    int
	users  *UserStore
}

// NewShiftStore builds a store over the given initial shifts. The user
// store supplies the role stamped onto new shifts.
func NewShiftStore(initial []model.Shift, users *UserStore) *ShiftStore {
	ids := make([]string, 0, len(initial))
	for _, sh := range initial {
		ids = append(ids, sh.ID)
	}
	return &ShiftStore{
		shifts: append([]model.Shift(nil), initial...),
		seq:    nextSeq(ids),
		users:  users,
	}
}

// Create stamps the user's current role onto the shift, assigns an id
// and appends it. The user must exist.
func (s *ShiftStore) Create(sh model.Shift) (model.Shift, error) {
	u, err := s.users.Get(sh.UserID)
	if err != nil {
		return model.Shift{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = seqID("SHF", s.seq)
	s.seq++
	sh.Role = u.Role
	s.shifts = append(s.shifts, sh)
	return sh, nil
}

// Update replaces the start and end of an existing shift.
func (s *ShiftStore) Update(id string, sh model.Shift) (model.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Shift{}, ErrShiftNotFound
	}
	s.shifts[i].Start = sh.Start
	s.shifts[i].End = sh.End
	return s.shifts[i], nil
}

// Delete removes the shift.
func (s *ShiftStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrShiftNotFound
	}
	s.shifts = append(s.shifts[:i], s.shifts[i+1:]...)
	return nil
}

// Shifts returns a snapshot of all shifts.
func (s *ShiftStore) Shifts() []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Shift(nil), s.shifts...)
}

// ForUser returns the shifts belonging to one user.
func (s *ShiftStore) ForUser(userID string) []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Shift
	for _, sh := range s.shifts {
		if sh.UserID == userID {
			out = append(out, sh)
		}
	}
	return out
}

func (s *ShiftStore) index(id string) int {
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			return i
		}
	}
	return -1
}
