// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the router, the session cookie middleware and the
// handlers that translate use case results into status codes and bodies.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
)

type routerOptions struct {
	cookieSecure bool
	docsPath     string
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

// WithSecureCookie marks the session cookie as Secure.
func WithSecureCookie(secure bool) RouterOption {
	return func(o *routerOptions) {
		o.cookieSecure = secure
	}
}

// WithDocsPath sets the location of the swagger document served under /docs.
func WithDocsPath(path string) RouterOption {
	return func(o *routerOptions) {
		o.docsPath = path
	}
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
// The /urls routes require a valid session cookie; the /user routes issue and clear it.
func NewRouter(
	logger *httplog.Logger,
	urlUseCase urlUseCase,
	userUseCase userUseCase,
	verifier tokenVerifier,
	opts ...RouterOption,
) *chi.Mux {
	o := routerOptions{docsPath: "./docs/swagger.yml"}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer(logger.Logger))

	r.Get("/ping", handlePing)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, o.docsPath)
	})

	validate := validator.New()

	r.Route("/urls", func(r chi.Router) {
		h := newURLHandler(urlUseCase, validate)

		r.Use(authenticate(verifier))

		r.Post("/", h.shortenURL)
		r.Get("/{shortId}", h.resolveShortID)
		r.Get("/{shortId}/analytics", h.getAnalytics)
	})

	r.Route("/user", func(r chi.Router) {
		h := newUserHandler(userUseCase, validate, o.cookieSecure)

		r.Post("/", h.signUp)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	return r
}
