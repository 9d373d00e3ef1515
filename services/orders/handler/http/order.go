package http

import (
	"errors"
	"net/http"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/orders"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &req)
	if err != nil {
		return respondOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get("user_role").(string)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID, userID, role)
	if err != nil {
		return respondOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return respondOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateStatus handles PATCH /orders/:id/status (staff only)
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req models.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.orderUC.AdvanceOrder(c.Request().Context(), orderID, req.Status); err != nil {
		return respondOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, map[string]string{
		"order_id": orderID.String(),
		"status":   req.Status,
	})
}

func respondOrderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, orders.ErrLocationRequired),
		errors.Is(err, orders.ErrEmptyOrder),
		errors.Is(err, orders.ErrInvalidQuantity),
		errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, orders.ErrUnknownProduct):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, orders.ErrNotOrderOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, orders.ErrOrderNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Order request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
