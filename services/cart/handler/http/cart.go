package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/cart"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler handles cart endpoints. All routes sit behind JWT auth;
// the cart owner is always the authenticated user.
type CartHandler struct {
	cartUC cart.CartUC
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartUC cart.CartUC) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

type saveCartRequest struct {
	Items []models.CartItem `json:"items"`
}

// GetCart handles GET /cart/:locationID
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, locationID, err := cartScope(c)
	if userID == "" {
		return err
	}

	result, err := h.cartUC.GetCart(c.Request().Context(), userID, locationID)
	if err != nil {
		return respondCartError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, result)
}

// SaveCart handles PUT /cart/:locationID
func (h *CartHandler) SaveCart(c echo.Context) error {
	userID, locationID, err := cartScope(c)
	if userID == "" {
		return err
	}

	var req saveCartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	payload := &models.Cart{
		UserID:     userID,
		LocationID: locationID,
		Items:      req.Items,
	}
	if err := h.cartUC.SaveCart(c.Request().Context(), payload); err != nil {
		return respondCartError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, payload)
}

// ClearCart handles DELETE /cart/:locationID
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, locationID, err := cartScope(c)
	if userID == "" {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID, locationID); err != nil {
		return respondCartError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// cartScope extracts the authenticated user and the location path param.
// On failure the response has already been written and err carries it.
func cartScope(c echo.Context) (string, int, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return "", 0, utils.UnauthorizedResponse(c, "")
	}

	locationID, err := strconv.Atoi(c.Param("locationID"))
	if err != nil {
		return "", 0, utils.BadRequestResponse(c, "locationID must be a number")
	}
	return userID.String(), locationID, nil
}

func respondCartError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, cart.ErrLocationRequired),
		errors.Is(err, cart.ErrInvalidItem):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, cart.ErrCartNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Cart request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
