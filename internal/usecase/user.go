package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type userRepository interface {
	Save(ctx context.Context, fullName, email, passwordHash string) (*entity.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type tokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

type UserUseCase struct {
	userRepo userRepository
	hasher   passwordHasher
	tokens   tokenIssuer
}

func NewUserUseCase(userRepo userRepository, hasher passwordHasher, tokens tokenIssuer) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// SignUp registers a new account. The store's unique constraint backs up the
// email pre-check when two sign ups race.
func (uc *UserUseCase) SignUp(ctx context.Context, fullName, email, password string) (*entity.User, error) {
	const op = "usecase.UserUseCase.SignUp"

	_, err := uc.userRepo.RetrieveByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailExists)
	case !errors.Is(err, entity.ErrUserNotFound):
		return nil, fmt.Errorf("%s: failed to look up user: %w", op, err)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := uc.userRepo.Save(ctx, fullName, email, hash)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to save user: %w", op, err)
	}

	return user, nil
}

// Login checks the credentials and issues a session token. An unknown email
// and a wrong password both yield entity.ErrInvalidCredentials.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	const op = "usecase.UserUseCase.Login"

	user, err := uc.userRepo.RetrieveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: failed to look up user: %w", op, err)
	}

	if !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
