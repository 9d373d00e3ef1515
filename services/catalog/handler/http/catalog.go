package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/catalog"
	"github.com/labstack/echo/v4"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListLocations handles GET /locations
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.catalogUC.ListLocations(c.Request().Context())
	if err != nil {
		return respondCatalogError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, locations)
}

// NearestLocation handles GET /locations/nearest?lat=..&lng=..
func (h *CatalogHandler) NearestLocation(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	nearest, err := h.catalogUC.NearestLocation(c.Request().Context(), lat, lng)
	if err != nil {
		return respondCatalogError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, nearest)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return respondCatalogError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, categories)
}

// ListProducts handles GET /products?location_id=..&category_id=..&q=..
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := &models.ProductFilter{Query: c.QueryParam("q")}

	if raw := c.QueryParam("location_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "location_id must be a number")
		}
		filter.LocationID = id
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "category_id must be a number")
		}
		filter.CategoryID = id
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return respondCatalogError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, products)
}

func respondCatalogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrLocationRequired),
		errors.Is(err, catalog.ErrInvalidCoordinates):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, catalog.ErrLocationNotFound),
		errors.Is(err, catalog.ErrOutOfDeliveryArea):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Catalog request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
