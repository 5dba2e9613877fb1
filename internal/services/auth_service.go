package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"inventory-api/internal/middleware"
	"inventory-api/internal/models"
	"inventory-api/internal/repositories"
)

// ErrInvalidPassword is returned by Login when the password does not match
// the stored hash.
var ErrInvalidPassword = errors.New("invalid password")

// authService implements the AuthService interface
type authService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	tokens    *middleware.TokenService
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens *middleware.TokenService, logger *logrus.Logger) AuthService {
	if logger == nil {
		logger = logrus.New()
	}
	return &authService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator.New(),
		logger:    logger,
	}
}

// Signup registers a new user account
func (s *authService) Signup(ctx context.Context, req *SignupRequest) error {
	if req == nil {
		return fmt.Errorf("signup request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Friendly pre-check. The unique index on users.email is the actual
	// guarantee: two concurrent signups both passing this lookup still
	// cannot both commit.
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !repositories.IsNotFound(err) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return repositories.DuplicateError("user", "email", req.Email)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(req.Email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return nil
}

// Login verifies credentials and issues a bearer token bound to the user ID
func (s *authService) Login(ctx context.Context, req *LoginRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("login request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		s.logger.WithField("email", req.Email).Warn("Password mismatch on login")
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in")
	return token, nil
}
