package gateway

import (
	"github.com/freshcart/freshcart/internal/pkg/constants"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/pkg/nsq"
	"github.com/google/uuid"
)

// EventGW publishes order lifecycle events over NSQ
type EventGW struct {
	producer *nsq.Producer
}

// NewEventGW creates a new order event gateway
func NewEventGW(producer *nsq.Producer) *EventGW {
	return &EventGW{producer: producer}
}

// PublishOrderCreated hands a fresh order to the fulfillment pipeline.
func (g *EventGW) PublishOrderCreated(event *models.OrderCreatedEvent) error {
	return g.producer.Publish(constants.TopicOrderCreated, event)
}

// PublishOrderStatusChanged announces a status transition.
func (g *EventGW) PublishOrderStatusChanged(orderID uuid.UUID, status string) error {
	return g.producer.Publish(constants.TopicOrderStatusChanged, map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
}
