package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"inventory-api/internal/models"
	"inventory-api/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE UNIQUE INDEX idx_users_email ON users (email);
		CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL DEFAULT '',
			product_name TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 0,
			price REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestUserRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	user := models.NewUser("john.doe@example.com", "hashed-password")

	if err := repo.Create(ctx, user); err != nil {
		t.Errorf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Errorf("GetByID() failed: %v", err)
	}

	if retrieved.ID != user.ID {
		t.Errorf("Retrieved user ID = %s, want %s", retrieved.ID, user.ID)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Retrieved user Email = %s, want %s", retrieved.Email, user.Email)
	}

	if retrieved.PasswordHash != user.PasswordHash {
		t.Errorf("Retrieved user PasswordHash = %s, want %s", retrieved.PasswordHash, user.PasswordHash)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	first := models.NewUser("dup@example.com", "hash-one")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	second := models.NewUser("dup@example.com", "hash-two")
	err := repo.Create(ctx, second)
	if err == nil {
		t.Fatal("Create() with duplicate email should fail")
	}

	if !repositories.IsDuplicate(err) {
		t.Errorf("Create() duplicate error = %v, want duplicate entry error", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	user := models.NewUser("jane.smith@example.com", "hashed-password")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByEmail(ctx, user.Email)
	if err != nil {
		t.Errorf("GetByEmail() failed: %v", err)
	}

	if retrieved.ID != user.ID {
		t.Errorf("Retrieved user ID = %s, want %s", retrieved.ID, user.ID)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(db, testLogger())

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if err == nil {
		t.Fatal("GetByEmail() for missing user should fail")
	}

	if !repositories.IsNotFound(err) {
		t.Errorf("GetByEmail() error = %v, want not found error", err)
	}
}
