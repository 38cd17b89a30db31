package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
)

const msgInternalError = "internal server error"

// recoverer turns a panicking handler into a 500 JSON error and logs the
// panic value with its stack.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	const op = "http.recoverer"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error(
					"panic recovered",
					slog.Group(op,
						slog.String("err", fmt.Sprint(rec)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, errorResponse{Error: msgInternalError})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
