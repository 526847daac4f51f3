package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the wire error shape for every error response: a JSON object
// with a single "Error" key. The HTTP status travels out of band.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"Error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

// NewNotAcceptableError reports a request whose Accept header does not
// allow a JSON response.
func NewNotAcceptableError() *APIError {
	return &APIError{
		Status:  http.StatusNotAcceptable,
		Message: "Unsupported response type",
	}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

func NewValidationError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewConflictError reports assignment conflicts: cargo already carried,
// not enough capacity left, or a detach against the wrong airplane.
// These surface as 403 on the wire.
func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: message,
	}
}

func NewMethodNotAllowedError() *APIError {
	return &APIError{
		Status:  http.StatusMethodNotAllowed,
		Message: "Method not supported",
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}
