package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher derives salted bcrypt hashes from plaintext passwords.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with cost clamped to the range bcrypt accepts.
// A non-positive cost selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	switch {
	case cost <= 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &PasswordHasher{cost: cost}
}

// Hash returns a new hash of password. Every call uses a fresh salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	const op = "auth.PasswordHasher.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	return string(b), nil
}

// Verify reports whether hash was derived from password.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
