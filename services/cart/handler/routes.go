package handler

import (
	"github.com/freshcart/freshcart/services/cart/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the cart HTTP handlers
type Handler struct {
	cartHandler *http.CartHandler
}

// NewHandler creates and initializes the cart handlers
func NewHandler(cartHandler *http.CartHandler) *Handler {
	return &Handler{cartHandler: cartHandler}
}

// RegisterRoutes registers the cart routes behind the given auth middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	cartGroup := e.Group("/cart", authMiddleware)
	cartGroup.GET("/:locationID", h.cartHandler.GetCart)
	cartGroup.PUT("/:locationID", h.cartHandler.SaveCart)
	cartGroup.DELETE("/:locationID", h.cartHandler.ClearCart)
}
