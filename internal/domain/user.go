// Package domain contains the core business entities and interfaces.
package domain

import "context"

// User represents a registered account. PasswordHash is the bcrypt hash of
// the credential; the raw value is never stored.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Age          *int
	Height       *float64
}

// PublicUser is the externally visible projection of a User. The credential
// hash is deliberately absent.
type PublicUser struct {
	ID     int64    `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Age    *int     `json:"age,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Public strips the credential hash from a User.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, Age: u.Age, Height: u.Height}
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	// GetByEmail returns the user with the given email, or nil if absent.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// CreateUser inserts a new account. It returns ErrDuplicateEmail when the
	// email is already taken; uniqueness is enforced by the store.
	CreateUser(ctx context.Context, email, name, passwordHash string, age *int, height *float64) (*User, error)
	// DeleteUser removes an account. The store cascades the delete to every
	// measurement row the user owns, across all three kinds.
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]User, error)
}
