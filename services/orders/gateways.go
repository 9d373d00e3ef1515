package orders

import (
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/freshcart/freshcart/services/orders EventGW

// EventGW publishes order lifecycle events to the message bus
type EventGW interface {
	PublishOrderCreated(event *models.OrderCreatedEvent) error
	PublishOrderStatusChanged(orderID uuid.UUID, status string) error
}
