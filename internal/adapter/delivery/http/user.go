package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/usecase"
)

type userUseCase interface {
	SignUp(ctx context.Context, fullName, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*usecase.Session, error)
}

type userHandler struct {
	useCase      userUseCase
	validate     *validator.Validate
	cookieSecure bool
}

func newUserHandler(useCase userUseCase, validate *validator.Validate, cookieSecure bool) *userHandler {
	return &userHandler{
		useCase:      useCase,
		validate:     validate,
		cookieSecure: cookieSecure,
	}
}

// decode reads a JSON body into v and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (h *userHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: msgInvalidRequestBody})
		return false
	}

	if err := h.validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: msgFieldsRequired})
		return false
	}

	return true
}

func (h *userHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest

	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.useCase.SignUp(r.Context(), req.FullName, req.UserEmail, req.UserPassword)
	if err != nil {
		if errors.Is(err, entity.ErrEmailExists) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: msgUserExists})
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, signUpResponse{
		Success: msgRegistered,
		User:    toUserResponse(user),
	})
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.useCase.Login(r.Context(), req.UserEmail, req.UserPassword)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: msgCheckCredentials})
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	render.Status(r, http.StatusOK)
	render.JSON(w, r, loginResponse{
		Success: msgLoggedIn,
		Token:   session.Token,
	})
}

func (h *userHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}
