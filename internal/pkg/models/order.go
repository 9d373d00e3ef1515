package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses form a closed progression; only the fulfillment pipeline
// and admin tooling move an order forward.
const (
	OrderStatusNew            = "new"
	OrderStatusProcessing     = "processing"
	OrderStatusAssigned       = "assigned"
	OrderStatusOutForDelivery = "out-for-delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCanceled       = "canceled"
)

// ValidStatusUpdate reports whether status is one staff may move an order
// to. New is set at creation only and never reassigned.
func ValidStatusUpdate(status string) bool {
	switch status {
	case OrderStatusProcessing, OrderStatusAssigned, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is a placed storefront order.
type Order struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"user_id" db:"user_id"`
	LocationID  int         `json:"location_id" db:"location_id"`
	TotalAmount float64     `json:"total_amount" db:"total_amount"`
	DeliveryFee float64     `json:"delivery_fee" db:"delivery_fee"`
	Status      string      `json:"status" db:"status"`
	DriverID    uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	Items       []OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderItem is a single line of an order. Price is captured at order time so
// later catalog edits don't rewrite history.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	ProductID int       `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	LocationID int              `json:"location_id" validate:"required"`
	Items      []OrderItemInput `json:"items" validate:"required"`
	Notes      string           `json:"notes"`
}

// OrderItemInput is one cart line submitted at checkout.
type OrderItemInput struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// UpdateOrderStatusRequest is the staff status-advance payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderCreatedEvent is published to NSQ when an order lands, and consumed by
// the fulfillment worker.
type OrderCreatedEvent struct {
	OrderID    uuid.UUID        `json:"order_id"`
	UserID     uuid.UUID        `json:"user_id"`
	LocationID int              `json:"location_id"`
	Items      []OrderItemInput `json:"items"`
	CreatedAt  time.Time        `json:"created_at"`
}
