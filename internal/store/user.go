package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

// ErrUserNotFound is returned when a user lookup yields no record.
var ErrUserNotFound = errors.New("user not found")

// ErrBadCredentials is returned by Authenticate for a wrong email or
// password, or a deactivated account. Callers must not distinguish the
// three cases in responses.
var ErrBadCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when a create or update would duplicate an
// email address.
var ErrEmailTaken = errors.New("email already in use")

// UserStore owns the staff accounts and backs the login endpoint.
type UserStore struct {
	mu    sync.Mutex
	users []model.User
	seq   int

	Now func() time.Time
}

// NewUserStore builds a store over the given initial users.
func NewUserStore(initial []model.User) *UserStore {
	ids := make([]string, 0, len(initial))
	for _, u := range initial {
		ids = append(ids, u.ID)
	}
	return &UserStore{
		users: append([]model.User(nil), initial...),
		seq:   nextSeq(ids),
		Now:   utcNow,
	}
}

// Create assigns an id and creation timestamp and appends the user.
// The email must be unique across the store.
func (s *UserStore) Create(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byEmail(u.Email) >= 0 {
		return model.User{}, ErrEmailTaken
	}
	u.ID = seqID("USR", s.seq)
	s.seq++
	u.CreatedAt = s.Now()
	s.users = append(s.users, u)
	return u, nil
}

// Update replaces the editable fields of an existing user. An empty
// PasswordHash keeps the current one.
func (s *UserStore) Update(id string, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}
	if j := s.byEmail(u.Email); j >= 0 && j != i {
		return model.User{}, ErrEmailTaken
	}
	cur := &s.users[i]
	cur.Name = u.Name
	cur.Email = u.Email
	cur.Role = u.Role
	cur.Active = u.Active
	if u.PasswordHash != "" {
		cur.PasswordHash = u.PasswordHash
	}
	return *cur, nil
}

// Deactivate clears the active flag, keeping the record for history.
func (s *UserStore) Deactivate(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}
	s.users[i].Active = false
	return s.users[i], nil
}

// Delete removes the user entirely.
func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrUserNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

// Get returns the user with the given id.
func (s *UserStore) Get(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}
	return s.users[i], nil
}

// Authenticate verifies the email/password pair against an active
// account and returns the matching user.
func (s *UserStore) Authenticate(email, password string) (model.User, error) {
	s.mu.Lock()
	i := s.byEmail(email)
	var u model.User
	if i >= 0 {
		u = s.users[i]
	}
	s.mu.Unlock()

	if i < 0 || !u.Active || !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrBadCredentials
	}
	return u, nil
}

// Users returns a snapshot of all users.
func (s *UserStore) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

func (s *UserStore) index(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// byEmail returns the position of the user with the given email
// (case-insensitive), or -1. Callers must hold the mutex.
func (s *UserStore) byEmail(email string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i
		}
	}
	return -1
}
