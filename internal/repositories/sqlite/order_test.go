package sqlite

import (
	"context"
	"testing"

	"inventory-api/internal/models"
	"inventory-api/internal/repositories"
)

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	order := models.NewOrder()
	order.CustomerName = "A"
	order.ProductName = "Widget"
	order.Quantity = 5
	order.Price = 9.99

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if retrieved.CustomerName != "A" {
		t.Errorf("Retrieved order CustomerName = %s, want A", retrieved.CustomerName)
	}
	if retrieved.ProductName != "Widget" {
		t.Errorf("Retrieved order ProductName = %s, want Widget", retrieved.ProductName)
	}
	if retrieved.Quantity != 5 {
		t.Errorf("Retrieved order Quantity = %d, want 5", retrieved.Quantity)
	}
	if retrieved.Price != 9.99 {
		t.Errorf("Retrieved order Price = %f, want 9.99", retrieved.Price)
	}
}

func TestOrderRepository_Create_EmptyFields(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	order := models.NewOrder()
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() with empty fields failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if retrieved.CustomerName != "" || retrieved.ProductName != "" {
		t.Errorf("Empty order fields should stay empty, got %q and %q",
			retrieved.CustomerName, retrieved.ProductName)
	}
	if retrieved.Quantity != 0 || retrieved.Price != 0 {
		t.Errorf("Empty order numbers should stay zero, got %d and %f",
			retrieved.Quantity, retrieved.Price)
	}
}

func TestOrderRepository_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	first := models.NewOrder()
	first.CustomerName = "First"
	second := models.NewOrder()
	second.CustomerName = "Second"

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("List() returned %d orders, want 2", len(orders))
	}

	found := map[string]bool{}
	for _, o := range orders {
		found[o.ID] = true
	}
	if !found[first.ID] || !found[second.ID] {
		t.Errorf("List() is missing created orders: %v", found)
	}
}

func TestOrderRepository_Update(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	order := models.NewOrder()
	order.CustomerName = "A"
	order.Quantity = 5
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	order.Quantity = 10
	if err := repo.Update(ctx, order); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if retrieved.Quantity != 10 {
		t.Errorf("Updated order Quantity = %d, want 10", retrieved.Quantity)
	}
	if retrieved.CustomerName != "A" {
		t.Errorf("Updated order CustomerName = %s, want A", retrieved.CustomerName)
	}
}

func TestOrderRepository_Update_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())

	order := models.NewOrder()
	err := repo.Update(context.Background(), order)
	if err == nil {
		t.Fatal("Update() for missing order should fail")
	}

	if !repositories.IsNotFound(err) {
		t.Errorf("Update() error = %v, want not found error", err)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, testLogger())
	ctx := context.Background()

	order := models.NewOrder()
	order.CustomerName = "ToDelete"
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	removed, err := repo.Delete(ctx, order.ID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if removed.ID != order.ID || removed.CustomerName != "ToDelete" {
		t.Errorf("Delete() returned %+v, want the removed record", removed)
	}

	if _, err := repo.GetByID(ctx, order.ID); !repositories.IsNotFound(err) {
		t.Errorf("GetByID() after delete = %v, want not found error", err)
	}

	// Second delete surfaces not found.
	if _, err := repo.Delete(ctx, order.ID); !repositories.IsNotFound(err) {
		t.Errorf("Second Delete() = %v, want not found error", err)
	}
}
