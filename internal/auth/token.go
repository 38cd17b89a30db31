// Package auth implements password hashing and the signed session tokens
// that identify a logged in user.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

var (
	// ErrInvalidToken is returned for malformed tokens and tokens with a bad signature.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for correctly signed tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
)

// TokenManager issues and verifies HS256 session tokens bound to a user id.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a TokenManager signing with secret. Issued tokens
// are valid for ttl.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token for userID along with its expiry.
func (m *TokenManager) Issue(userID int64) (string, time.Time, error) {
	const op = "auth.TokenManager.Issue"

	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	return token, expiresAt, nil
}

// Verify checks the signature of token first and its expiry second. It
// returns ErrInvalidToken or ErrExpiredToken accordingly.
func (m *TokenManager) Verify(token string) (*entity.Identity, error) {
	const op = "auth.TokenManager.Verify"

	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrExpiredToken)
		}

		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: bad subject", op, ErrInvalidToken)
	}

	return &entity.Identity{UserID: userID}, nil
}
