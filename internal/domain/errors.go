package domain

import (
	"fmt"
	"net/http"
)

// AppError is a business-rule violation that carries its own HTTP status.
type AppError struct {
	Message    string
	StatusCode int
}

func NewAppError(message string, statusCode int) *AppError {
	return &AppError{Message: message, StatusCode: statusCode}
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrLoginTaken         = NewAppError("login already in use", http.StatusConflict)
	ErrInvalidCredentials = NewAppError("invalid credentials", http.StatusUnauthorized)
	ErrTokenMissing       = NewAppError("token not provided", http.StatusUnauthorized)
	ErrUnauthenticated    = NewAppError("invalid token", http.StatusUnauthorized)
	ErrNoIdentity         = NewAppError("user not authenticated", http.StatusUnauthorized)
	ErrInvalidID          = NewAppError("invalid id", http.StatusBadRequest)
	ErrUserNotFound       = NewAppError("user not found", http.StatusNotFound)
	ErrCategoryNotFound   = NewAppError("category not found", http.StatusNotFound)
	ErrRecipeNotFound     = NewAppError("recipe not found", http.StatusNotFound)
	ErrRouteNotFound      = NewAppError("route not found", http.StatusNotFound)
)

// StorageError wraps a failed persistence operation. Its details are for
// server-side logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
