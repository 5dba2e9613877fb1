package sqlite

import (
	"context"
	"database/sql"

	"inventory-api/internal/models"
	"inventory-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// OrderRepository implements the OrderRepository interface for SQLite
type OrderRepository struct {
	*baseRepository
}

// NewOrderRepository creates a new SQLite order repository
func NewOrderRepository(db *sql.DB, logger *logrus.Logger) repositories.OrderRepository {
	return &OrderRepository{
		baseRepository: newBaseRepository(db, "orders", logger),
	}
}

// Create inserts a new order
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return repositories.ValidationError("order", order.ID, err)
	}

	query := `
		INSERT INTO orders (id, customer_name, product_name, quantity, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.executeExec(ctx, "create", query,
		order.ID,
		order.CustomerName,
		order.ProductName,
		order.Quantity,
		order.Price,
		order.CreatedAt,
		order.UpdatedAt,
	)

	return err
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if err := r.validateID(id); err != nil {
		return nil, err
	}

	query := `
		SELECT id, customer_name, product_name, quantity, price, created_at, updated_at
		FROM orders
		WHERE id = ?`

	row := r.executeQueryRow(ctx, "get_by_id", query, id)

	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.ProductName,
		&order.Quantity,
		&order.Price,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("order", id)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "order", id, err)
	}

	return order, nil
}

// List retrieves all orders in insertion order
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, customer_name, product_name, quantity, price, created_at, updated_at
		FROM orders
		ORDER BY created_at`

	rows, err := r.executeQuery(ctx, "list", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.ProductName,
			&order.Quantity,
			&order.Price,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "order", "", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "order", "", err)
	}

	return orders, nil
}

// Update overwrites an existing order row
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return repositories.ValidationError("order", order.ID, err)
	}

	order.UpdateTimestamp()

	query := `
		UPDATE orders
		SET customer_name = ?, product_name = ?, quantity = ?, price = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.executeExec(ctx, "update", query,
		order.CustomerName,
		order.ProductName,
		order.Quantity,
		order.Price,
		order.UpdatedAt,
		order.ID,
	)

	if err != nil {
		return err
	}

	return r.checkRowsAffected(result, "update", order.ID)
}

// Delete removes an order by ID and returns the removed record.
// The read and the delete are two statements; a concurrent delete between
// them surfaces as a not-found error from checkRowsAffected.
func (r *OrderRepository) Delete(ctx context.Context, id string) (*models.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := "DELETE FROM orders WHERE id = ?"
	result, err := r.executeExec(ctx, "delete", query, id)
	if err != nil {
		return nil, err
	}

	if err := r.checkRowsAffected(result, "delete", id); err != nil {
		return nil, err
	}

	return order, nil
}
