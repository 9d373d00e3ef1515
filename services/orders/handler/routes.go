package handler

import (
	"github.com/freshcart/freshcart/internal/pkg/middleware"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/orders/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the order HTTP handlers
type Handler struct {
	orderHandler *http.OrderHandler
}

// NewHandler creates and initializes the order handlers
func NewHandler(orderHandler *http.OrderHandler) *Handler {
	return &Handler{orderHandler: orderHandler}
}

// RegisterRoutes registers the order routes behind the given auth middleware.
// The status-advance route is additionally gated to staff roles.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	orderGroup := e.Group("/orders", authMiddleware)
	orderGroup.POST("", h.orderHandler.CreateOrder)
	orderGroup.GET("", h.orderHandler.ListOrders)
	orderGroup.GET("/:id", h.orderHandler.GetOrder)
	orderGroup.PATCH("/:id/status", h.orderHandler.UpdateStatus,
		middleware.RequireRole(models.RoleAdmin, models.RoleDriver))
}
