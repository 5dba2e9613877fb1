package repositories

import (
	"context"

	"inventory-api/internal/models"
)

// UserRepository defines data access operations for users.
// Email uniqueness is enforced by the store: Create fails with a
// duplicate-entry error when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// OrderRepository defines data access operations for orders.
// List makes no ordering guarantee beyond insertion order.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	// Delete removes the order and returns the removed record, or a
	// not-found error if no order has that ID.
	Delete(ctx context.Context, id string) (*models.Order, error)
}

// RepositoryContainer holds all repository instances
type RepositoryContainer struct {
	UserRepo  UserRepository
	OrderRepo OrderRepository
}
