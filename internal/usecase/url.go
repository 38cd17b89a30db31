package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const maxShortIDRetries = 5

var (
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short id")
	// ErrEmptyURL is returned when shortening is requested without a URL.
	ErrEmptyURL = errors.New("url is required")
)

type urlRepository interface {
	Save(ctx context.Context, userID int64, shortID, originalURL string) (*entity.URL, error)
	RetrieveByShortID(ctx context.Context, shortID string) (*entity.URL, error)
	RecordAccess(ctx context.Context, shortID string, accessedAt time.Time) (*entity.URL, error)
}

type URLUseCase struct {
	shortIDLength int
	urlRepo       urlRepository
	now           func() time.Time
}

func NewURLUseCase(shortIDLength int, urlRepo urlRepository) *URLUseCase {
	return &URLUseCase{
		shortIDLength: shortIDLength,
		urlRepo:       urlRepo,
		now:           time.Now,
	}
}

// ShortenURL stores originalURL under a fresh random short id. A short id
// that is already taken is regenerated up to maxShortIDRetries times.
func (uc *URLUseCase) ShortenURL(ctx context.Context, identity entity.Identity, originalURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if originalURL == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyURL)
	}

	for i := 0; i < maxShortIDRetries; i++ {
		shortID, err := gonanoid.New(uc.shortIDLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short id: %w", op, err)
		}

		url, err := uc.urlRepo.Save(ctx, identity.UserID, shortID, originalURL)
		if err != nil {
			if errors.Is(err, entity.ErrShortIDExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ResolveShortID records an access to the mapping and returns it.
func (uc *URLUseCase) ResolveShortID(ctx context.Context, _ entity.Identity, shortID string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortID"

	url, err := uc.urlRepo.RecordAccess(ctx, shortID, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short id: %w", op, err)
	}

	return url, nil
}

// GetAnalytics returns the mapping with its access log without recording an access.
func (uc *URLUseCase) GetAnalytics(ctx context.Context, _ entity.Identity, shortID string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetAnalytics"

	url, err := uc.urlRepo.RetrieveByShortID(ctx, shortID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url analytics: %w", op, err)
	}

	return url, nil
}
