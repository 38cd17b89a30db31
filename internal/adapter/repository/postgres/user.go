package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type userDB struct {
	ID           int64     `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *userDB) toEntity() *entity.User {
	return &entity.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, fullName, email, passwordHash string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.Save"
	const query = `INSERT INTO users(full_name, email, password_hash) VALUES ($1, $2, $3) RETURNING *`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, fullName, email, passwordHash); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into users table: %w", op, err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) RetrieveByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByEmail"
	const query = `SELECT * FROM users WHERE email = $1`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from users table: %w", op, err)
	}

	return user.toEntity(), nil
}
