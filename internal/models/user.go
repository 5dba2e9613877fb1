package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password is only ever stored as
// a bcrypt hash; the plaintext never leaves the auth service.
type User struct {
	ID           string    `json:"id" db:"id" validate:"required,uuid"`
	Email        string    `json:"email" db:"email" validate:"required"`
	PasswordHash string    `json:"-" db:"password_hash" validate:"required"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewUser creates a new user with a generated ID and creation timestamp.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// Validate validates the user data before persisting.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user ID is required")
	}

	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}

	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}

	return nil
}
