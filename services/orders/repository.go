package orders

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/freshcart/freshcart/services/orders OrderRepo

// OrderRepo defines the orders repository interface
type OrderRepo interface {
	// CreateOrder persists the order, its lines, and the optional customer
	// note in one transaction.
	CreateOrder(ctx context.Context, order *models.Order, notes string) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error

	GetLocationDeliveryFee(ctx context.Context, locationID int) (float64, error)
	GetProductPrices(ctx context.Context, productIDs []int) (map[int]float64, error)

	// FulfillOrder claims a new order and reserves stock for every line in
	// one transaction. It reports false when the order was already claimed,
	// so redelivered events are no-ops.
	FulfillOrder(ctx context.Context, orderID uuid.UUID, locationID int, items []models.OrderItemInput) (bool, error)
}
