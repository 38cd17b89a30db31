// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL together with
// its access log, the User struct, which represents a registered account,
// and the sentinel errors shared between layers.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrShortIDExists is returned when attempting to create a URL with a short id that already exists.
	ErrShortIDExists = errors.New("short id exists")
	// ErrURLNotFound is returned when a URL with the specified short id cannot be found.
	ErrURLNotFound = errors.New("url not found")
)

// URL represents a shortened URL.
type URL struct {
	ID          int64          // ID is the unique identifier of the URL in the database.
	ShortID     string         // ShortID is the generated identifier used to shorten the original URL.
	OriginalURL string         // OriginalURL is the full URL that the short id resolves to.
	UserID      int64          // UserID is the account that created the short URL.
	AccessLog   []AccessRecord // AccessLog holds one record per redirect, oldest first.
	CreatedAt   time.Time      // CreatedAt is the timestamp when the URL was created.
	UpdatedAt   time.Time      // UpdatedAt is the timestamp when the URL was last updated.
}

// AccessRecord marks a single resolution of a short URL.
type AccessRecord struct {
	ID         int64
	URLID      int64
	AccessedAt time.Time
}
