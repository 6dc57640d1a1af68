package domain

import (
	"errors"
	"time"
)

const (
	RoleReader     = "reader"
	RoleEditor     = "editor"
	RoleJournalist = "journalist"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleReader, RoleEditor, RoleJournalist:
		return true
	}
	return false
}

// User models an authenticated actor in the system. The role decides what the
// user may do: readers subscribe and consume the feed, editors approve
// articles, journalists author them.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsReader reports whether the user may hold subscription edges.
func (u *User) IsReader() bool { return u.Role == RoleReader }
