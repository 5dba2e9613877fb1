package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order represents a customer order. Every field besides the ID is optional
// at creation; missing values are stored as their zero value.
type Order struct {
	ID           string    `json:"id" db:"id" validate:"required,uuid"`
	CustomerName string    `json:"customerName" db:"customer_name"`
	ProductName  string    `json:"productName" db:"product_name"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Price        float64   `json:"price" db:"price"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewOrder creates a new order with a generated ID and timestamps.
func NewOrder() *Order {
	now := time.Now()
	return &Order{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the order data before persisting.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order ID is required")
	}

	return nil
}

// UpdateTimestamp refreshes the updated_at timestamp.
func (o *Order) UpdateTimestamp() {
	o.UpdatedAt = time.Now()
}
