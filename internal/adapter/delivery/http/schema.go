package http

import (
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const (
	msgURLRequired        = "Url is Required"
	msgURLNotFound        = "Url Not Found"
	msgFieldsRequired     = "All fields are required"
	msgUserExists         = "User already Exist"
	msgCheckCredentials   = "Please Check your Credentials"
	msgInvalidRequestBody = "invalid request body"
	msgTokenMissing       = "Token missing"
	msgTokenInvalid       = "Invalid or expired token"
	msgRegistered         = "Registered Successfully"
	msgLoggedIn           = "Login Successfully"
)

// urlRequest is the body of a shortening request.
type urlRequest struct {
	URL string `json:"Url" validate:"required"`
}

// shortURLResponse carries the short id of a newly created short URL.
type shortURLResponse struct {
	ID string `json:"Id"`
}

// accessResponse is a single access log entry.
type accessResponse struct {
	Timestamp time.Time `json:"Timestamp"`
}

// analyticsResponse exposes a short URL together with its raw access log.
type analyticsResponse struct {
	ID          string           `json:"Id"`
	OriginalURL string           `json:"OriginalUrl"`
	Analytics   []accessResponse `json:"Analytics"`
	CreatedAt   time.Time        `json:"CreatedAt"`
}

func toAnalyticsResponse(url *entity.URL) analyticsResponse {
	analytics := make([]accessResponse, 0, len(url.AccessLog))
	for _, a := range url.AccessLog {
		analytics = append(analytics, accessResponse{Timestamp: a.AccessedAt})
	}

	return analyticsResponse{
		ID:          url.ShortID,
		OriginalURL: url.OriginalURL,
		Analytics:   analytics,
		CreatedAt:   url.CreatedAt,
	}
}

type signUpRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

type loginRequest struct {
	UserEmail    string `json:"userEmail" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

// userResponse is the public view of an account; the password hash never leaves the server.
type userResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type signUpResponse struct {
	Success string       `json:"success"`
	User    userResponse `json:"USER"`
}

type loginResponse struct {
	Success string `json:"success"`
	Token   string `json:"Token"`
}

// errorResponse is the error body of the url and user endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the error body written by the auth middleware.
type messageResponse struct {
	Message string `json:"message"`
}
