package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

var userColumns = []string{"id", "full_name", "email", "password_hash", "created_at", "updated_at"}

func setupUserRepository(t testing.TB) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := setupDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_Save(t *testing.T) {
	t.Run("email exists", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("John Doe", "john@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})

		user, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash")

		assert.ErrorIs(t, err, entity.ErrEmailExists)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown error", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("John Doe", "john@example.com", "hash").
			WillReturnError(errUnknown)

		user, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash")

		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("John Doe", "john@example.com", "hash").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "John Doe", "john@example.com", "hash", time.Time{}, time.Time{}))

		user, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash")

		assert.NoError(t, err)
		assert.Equal(t, &entity.User{
			ID:           1,
			FullName:     "John Doe",
			Email:        "john@example.com",
			PasswordHash: "hash",
		}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_RetrieveByEmail(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("john@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.RetrieveByEmail(context.Background(), "john@example.com")

		assert.ErrorIs(t, err, entity.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown error", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("john@example.com").
			WillReturnError(errUnknown)

		user, err := repo.RetrieveByEmail(context.Background(), "john@example.com")

		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := setupUserRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "John Doe", "john@example.com", "hash", time.Time{}, time.Time{}))

		user, err := repo.RetrieveByEmail(context.Background(), "john@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
