package handler

import (
	"github.com/freshcart/freshcart/services/catalog/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the catalog HTTP handlers
type Handler struct {
	catalogHandler *http.CatalogHandler
}

// NewHandler creates and initializes the catalog handlers
func NewHandler(catalogHandler *http.CatalogHandler) *Handler {
	return &Handler{catalogHandler: catalogHandler}
}

// RegisterRoutes registers the catalog browsing routes. They are public:
// shoppers browse before logging in.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/locations", h.catalogHandler.ListLocations)
	e.GET("/locations/nearest", h.catalogHandler.NearestLocation)
	e.GET("/categories", h.catalogHandler.ListCategories)
	e.GET("/products", h.catalogHandler.ListProducts)
}
