package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"inventory-api/internal/models"
	"inventory-api/internal/repositories"
)

// orderService implements the OrderService interface
type orderService struct {
	orderRepo repositories.OrderRepository
	logger    *logrus.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repositories.OrderRepository, logger *logrus.Logger) OrderService {
	if logger == nil {
		logger = logrus.New()
	}
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// CreateOrder creates an order from whatever subset of fields was supplied
func (s *orderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if req == nil {
		return nil, fmt.Errorf("create order request cannot be nil")
	}

	order := models.NewOrder()
	order.CustomerName = req.CustomerName
	order.ProductName = req.ProductName
	order.Quantity = req.Quantity
	order.Price = req.Price

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.WithField("order_id", order.ID).Info("Order created")
	return order, nil
}

// ListOrders returns all orders currently in the store
func (s *orderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder applies a partial update: each stored field is replaced only
// when the incoming value is truthy. A zero quantity, zero price, or empty
// string leaves the stored value as is, so this endpoint cannot be used to
// reset a field.
func (s *orderService) UpdateOrder(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}

	if req == nil {
		return nil, fmt.Errorf("update order request cannot be nil")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != "" {
		order.CustomerName = req.CustomerName
	}
	if req.ProductName != "" {
		order.ProductName = req.ProductName
	}
	if req.Quantity != 0 {
		order.Quantity = req.Quantity
	}
	if req.Price != 0 {
		order.Price = req.Price
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.WithField("order_id", order.ID).Info("Order updated")
	return order, nil
}

// DeleteOrder removes an order by ID
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("order ID cannot be empty")
	}

	removed, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":      removed.ID,
		"customer_name": removed.CustomerName,
	}).Info("Order deleted")

	return nil
}
