package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const tokenCookieName = "token"

type tokenVerifier interface {
	Verify(token string) (*entity.Identity, error)
}

type identityCtxKey struct{}

func withIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func identityFrom(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(entity.Identity)
	return identity, ok
}

// authenticate rejects requests without a valid session cookie and attaches
// the caller's identity to the request context otherwise.
func authenticate(verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(tokenCookieName)
			if err != nil || cookie.Value == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, messageResponse{Message: msgTokenMissing})
				return
			}

			identity, err := verifier.Verify(cookie.Value)
			if err != nil {
				httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, messageResponse{Message: msgTokenInvalid})
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), *identity)))
		})
	}
}
