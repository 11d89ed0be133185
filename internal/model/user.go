package model

import "time"

// UserRole is the lower-cased role stored on a user record. It is a
// separate enumeration from the session role used for access decisions;
// the two are mapped exactly once, when a login establishes a session
// (see rbac.FromUserRole).
type UserRole string

const (
	UserAdmin   UserRole = "admin"
	UserManager UserRole = "manager"
	UserServer  UserRole = "server"
	UserKitchen UserRole = "kitchen"
)

// User is a staff account. PasswordHash is a bcrypt digest and is never
// serialized in responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Shift is one scheduled work period. Role is duplicated from the user
// at creation time. Overlapping shifts for the same user are not
// rejected here.
type Shift struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Role   UserRole  `json:"role"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}
