package services

import (
	"context"

	"inventory-api/internal/models"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Signup registers a new account. It fails with a duplicate-entry error
	// when the email is already registered and does not issue a token; the
	// caller must log in separately.
	Signup(ctx context.Context, req *SignupRequest) error

	// Login verifies the credentials and returns a signed bearer token.
	// It fails with a not-found error for an unknown email and with
	// ErrInvalidPassword on a mismatch.
	Login(ctx context.Context, req *LoginRequest) (string, error)
}

// OrderService defines the interface for order business logic
type OrderService interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	UpdateOrder(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateOrderRequest represents an order creation request. Every field is
// optional; missing fields are stored as their zero value.
type CreateOrderRequest struct {
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// UpdateOrderRequest represents a partial order update. Only truthy values
// overwrite stored fields: a zero quantity, zero price, or empty string
// leaves the stored value unchanged. Switching to pointer fields here is
// the extension point for distinguishing "absent" from "explicitly cleared".
type UpdateOrderRequest struct {
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}
