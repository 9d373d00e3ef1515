package orders

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/freshcart/freshcart/services/orders OrderUC

// OrderUC represents the orders usecase interface
type OrderUC interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error)

	// AdvanceOrder moves an order to a later status. Staff tooling only;
	// the route carries a role gate.
	AdvanceOrder(ctx context.Context, orderID uuid.UUID, status string) error

	// ProcessOrderCreated is the fulfillment step: it reserves stock for
	// every line and moves the order from new to processing. A returned
	// error requeues the event.
	ProcessOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error
}
