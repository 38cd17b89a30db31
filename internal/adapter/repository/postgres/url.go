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

type urlDB struct {
	ID          int64     `db:"id"`
	ShortID     string    `db:"short_id"`
	OriginalURL string    `db:"original_url"`
	UserID      int64     `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (u *urlDB) toEntity(accesses []accessDB) *entity.URL {
	log := make([]entity.AccessRecord, 0, len(accesses))
	for _, a := range accesses {
		log = append(log, a.toEntity())
	}

	return &entity.URL{
		ID:          u.ID,
		ShortID:     u.ShortID,
		OriginalURL: u.OriginalURL,
		UserID:      u.UserID,
		AccessLog:   log,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type accessDB struct {
	ID         int64     `db:"id"`
	URLID      int64     `db:"url_id"`
	AccessedAt time.Time `db:"accessed_at"`
}

func (a accessDB) toEntity() entity.AccessRecord {
	return entity.AccessRecord{
		ID:         a.ID,
		URLID:      a.URLID,
		AccessedAt: a.AccessedAt,
	}
}

type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

// Save inserts a new mapping with an empty access log. A taken short id
// yields entity.ErrShortIDExists.
func (r *URLRepository) Save(ctx context.Context, userID int64, shortID, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(short_id, original_url, user_id) VALUES ($1, $2, $3) RETURNING *`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortID, originalURL, userID); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortIDExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(nil), nil
}

// RetrieveByShortID returns the mapping together with its full access log.
func (r *URLRepository) RetrieveByShortID(ctx context.Context, shortID string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByShortID"
	const urlQuery = `SELECT * FROM urls WHERE short_id = $1`
	const accessQuery = `SELECT * FROM url_accesses WHERE url_id = $1 ORDER BY id`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, urlQuery, shortID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	var accesses []accessDB

	if err := r.db.SelectContext(ctx, &accesses, accessQuery, url.ID); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from url_accesses table: %w", op, err)
	}

	return url.toEntity(accesses), nil
}

// RecordAccess appends an access record to the mapping with the given short
// id and returns the mapping, in a single statement. Nothing is written when
// the short id is unknown.
func (r *URLRepository) RecordAccess(ctx context.Context, shortID string, accessedAt time.Time) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RecordAccess"
	const query = `WITH access AS (
			INSERT INTO url_accesses(url_id, accessed_at)
			SELECT id, $2 FROM urls WHERE short_id = $1
			RETURNING url_id
		)
		SELECT urls.* FROM urls JOIN access ON access.url_id = urls.id`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortID, accessedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to insert into url_accesses table: %w", op, err)
	}

	return url.toEntity(nil), nil
}
