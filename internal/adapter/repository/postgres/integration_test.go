//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/shortlink/internal/config"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	pgpool "github.com/vadimbarashkov/shortlink/pkg/postgres"
	"golang.org/x/sync/errgroup"
)

func setupPostgres(t testing.TB) *sqlx.DB {
	t.Helper()

	ctx := context.Background()

	cfg := config.Postgres{
		User:     "test",
		Password: "test",
		DB:       "shortlink",
		SSLMode:  "disable",
	}

	pgCont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     cfg.User,
				"POSTGRES_PASSWORD": cfg.Password,
				"POSTGRES_DB":       cfg.DB,
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgCont.Terminate(ctx); err != nil {
			t.Fatalf("Failed to terminate postgres container: %v", err)
		}
	})

	cfg.Host, err = pgCont.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := pgCont.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}
	cfg.Port = port.Int()

	if _, err := pgpool.RunMigrations("file://../../../../migrations", cfg.DSN()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := pgpool.New(ctx, cfg.DSN())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	urlRepo := NewURLRepository(db)

	user, err := userRepo.Save(ctx, "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := userRepo.Save(ctx, "Jane Doe", "john@example.com", "other")
		assert.ErrorIs(t, err, entity.ErrEmailExists)

		var count int
		require.NoError(t, db.GetContext(ctx, &count, `SELECT count(*) FROM users WHERE email = $1`, "john@example.com"))
		assert.Equal(t, 1, count)
	})

	t.Run("find user by email", func(t *testing.T) {
		found, err := userRepo.RetrieveByEmail(ctx, "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)
	})

	t.Run("duplicate short id", func(t *testing.T) {
		_, err := urlRepo.Save(ctx, user.ID, "dupid", "https://example.com")
		require.NoError(t, err)

		_, err = urlRepo.Save(ctx, user.ID, "dupid", "https://example.org")
		assert.ErrorIs(t, err, entity.ErrShortIDExists)
	})

	t.Run("unknown short id records nothing", func(t *testing.T) {
		_, err := urlRepo.RecordAccess(ctx, "nopes", time.Now())
		assert.ErrorIs(t, err, entity.ErrURLNotFound)

		var count int
		require.NoError(t, db.GetContext(ctx, &count, `SELECT count(*) FROM url_accesses`))
		assert.Zero(t, count)
	})

	t.Run("concurrent redirects", func(t *testing.T) {
		const n = 50

		url, err := urlRepo.Save(ctx, user.ID, "conc1", "https://example.com")
		require.NoError(t, err)
		assert.Empty(t, url.AccessLog)

		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				_, err := urlRepo.RecordAccess(ctx, "conc1", time.Now())
				return err
			})
		}
		require.NoError(t, g.Wait())

		got, err := urlRepo.RetrieveByShortID(ctx, "conc1")
		require.NoError(t, err)
		assert.Len(t, got.AccessLog, n)

		for i := 1; i < len(got.AccessLog); i++ {
			assert.Greater(t, got.AccessLog[i].ID, got.AccessLog[i-1].ID, fmt.Sprintf("record %d", i))
		}
	})
}
