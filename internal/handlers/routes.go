package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventory-api/internal/middleware"
	"inventory-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	AuthService  services.AuthService
	OrderService services.OrderService
	TokenService *middleware.TokenService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	authHandler := NewAuthHandler(config.AuthService)
	orderHandler := NewOrderHandler(config.OrderService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "inventory-api",
			"version": "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		// Authentication routes
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// Order routes. These are public: no token is verified despite the
		// issuer existing. Wrap the group with
		// middleware.Authentication(config.TokenService) to protect them.
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}
	}
}
