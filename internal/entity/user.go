package entity

import (
	"errors"
	"time"
)

var (
	// ErrEmailExists is returned when signing up with an email that is already registered.
	ErrEmailExists = errors.New("email exists")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents a registered account. Email is the login key.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID int64
}
