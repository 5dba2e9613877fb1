package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestTokenService() *TokenService {
	return NewTokenService(&TokenConfig{Secret: "test-secret"})
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	tokens := newTestTokenService()

	token, err := tokens.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("Claims UserID = %s, want user-123", claims.UserID)
	}

	if claims.ExpiresAt != nil {
		t.Errorf("Claims ExpiresAt = %v, want no expiry by default", claims.ExpiresAt)
	}
}

func TestTokenService_ExpiryWhenConfigured(t *testing.T) {
	tokens := NewTokenService(&TokenConfig{
		Secret:        "test-secret",
		TokenDuration: time.Hour,
	})

	token, err := tokens.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}

	if claims.ExpiresAt == nil {
		t.Error("Claims ExpiresAt is nil, want an expiry when a duration is configured")
	}
}

func TestTokenService_RotatedSecretInvalidatesTokens(t *testing.T) {
	token, err := newTestTokenService().GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	rotated := NewTokenService(&TokenConfig{Secret: "rotated-secret"})
	if _, err := rotated.ValidateToken(token); err == nil {
		t.Error("ValidateToken() with a rotated secret should fail")
	}
}

func setupAuthTestRouter(tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Authentication(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func TestAuthentication_MissingHeader(t *testing.T) {
	router := setupAuthTestRouter(newTestTokenService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthentication_MalformedHeader(t *testing.T) {
	router := setupAuthTestRouter(newTestTokenService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthentication_ValidToken(t *testing.T) {
	tokens := newTestTokenService()
	router := setupAuthTestRouter(tokens)

	token, err := tokens.GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
}
