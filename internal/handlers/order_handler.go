package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/models"
	"inventory-api/internal/services"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary Create a new order
// @Description Create an order from any subset of the order fields
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to create order",
		})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to create order",
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// @Summary List orders
// @Description Get all orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to fetch orders",
		})
		return
	}

	if orders == nil {
		orders = []*models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Update an order
// @Description Partially update an order. Only truthy values overwrite
// stored fields; a zero or empty value leaves the stored value unchanged.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body services.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.Order
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &req)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Delete an order
// @Description Delete an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}
