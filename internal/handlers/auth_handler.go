package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CredentialsRequest represents the signup and login request body
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Sign up
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Signup credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	err := h.authService.Signup(c.Request.Context(), &services.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusBadRequest, AuthResponse{
				Success: false,
				Message: "User already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Success: true})
}

// @Summary Log in
// @Description Authenticate a user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 404 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &services.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, AuthResponse{
				Success: false,
				Message: "User not found",
			})
			return
		}
		if errors.Is(err, services.ErrInvalidPassword) {
			c.JSON(http.StatusBadRequest, AuthResponse{
				Success: false,
				Message: "Invalid password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Success: true, Token: token})
}

// @Summary Log out
// @Description Clear the client-side token cookie. Issued tokens are not
// invalidated; there is no denylist and tokens carry no expiry by default.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless no-op on the server side: only the cookie hint is cleared.
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}
