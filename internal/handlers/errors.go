package handlers

import (
	"inventory-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a human-readable message response
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse represents the response body of the auth endpoints
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	return repositories.IsNotFound(err)
}

// isDuplicateError checks if an error is a duplicate error
func isDuplicateError(err error) bool {
	return repositories.IsDuplicate(err)
}
