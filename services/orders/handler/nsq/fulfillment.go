package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/orders"
)

// processTimeout bounds one fulfillment attempt; NSQ redelivers on failure.
const processTimeout = 30 * time.Second

// FulfillmentHandler consumes order.created events
type FulfillmentHandler struct {
	orderUC orders.OrderUC
}

// NewFulfillmentHandler creates a new fulfillment handler
func NewFulfillmentHandler(orderUC orders.OrderUC) *FulfillmentHandler {
	return &FulfillmentHandler{orderUC: orderUC}
}

// HandleOrderCreated decodes an order.created event and runs the
// fulfillment step. Returning an error requeues the message.
func (h *FulfillmentHandler) HandleOrderCreated(body []byte) error {
	var event models.OrderCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		// malformed payloads never become valid; drop instead of requeue
		logger.Error("Dropping malformed order event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	if err := h.orderUC.ProcessOrderCreated(ctx, &event); err != nil {
		return fmt.Errorf("fulfillment failed for order %s: %w", event.OrderID, err)
	}
	return nil
}
