package usecase

import (
	"context"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/orders"
	"github.com/google/uuid"
)

// CreateOrder validates checkout, prices every line from the catalog, writes
// the order, publishes it to fulfillment, and empties the cart slot. Prices
// submitted by the client are ignored.
func (uc *OrderUC) CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.LocationID <= 0 {
		return nil, orders.ErrLocationRequired
	}
	if len(req.Items) == 0 {
		return nil, orders.ErrEmptyOrder
	}

	productIDs := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, orders.ErrInvalidQuantity
		}
		productIDs = append(productIDs, item.ProductID)
	}

	deliveryFee, err := uc.orderRepo.GetLocationDeliveryFee(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	prices, err := uc.orderRepo.GetProductPrices(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:          uuid.New(),
		UserID:      userID,
		LocationID:  req.LocationID,
		DeliveryFee: deliveryFee,
		Status:      models.OrderStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	total := deliveryFee
	for _, item := range req.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			return nil, orders.ErrUnknownProduct
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
		total += price * float64(item.Quantity)
	}
	order.TotalAmount = total

	if err := uc.orderRepo.CreateOrder(ctx, order, req.Notes); err != nil {
		return nil, err
	}

	event := &models.OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     userID,
		LocationID: order.LocationID,
		CreatedAt:  now,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, models.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if err := uc.eventGW.PublishOrderCreated(event); err != nil {
		// the order is committed; fulfillment will pick it up from a
		// reconciliation sweep if the bus is down
		logger.Error("Failed to publish order created event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err),
		)
	}

	if err := uc.cartUC.ClearCart(ctx, userID.String(), order.LocationID); err != nil {
		logger.Warn("Failed to clear cart after checkout",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
	}

	logger.Info("Order created",
		logger.String("order_id", order.ID.String()),
		logger.Int("location_id", order.LocationID),
		logger.Any("total", order.TotalAmount),
	)
	return order, nil
}

// GetOrder returns an order. Customers only see their own; staff roles see
// everything.
func (uc *OrderUC) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID && requesterRole == models.RoleCustomer {
		return nil, orders.ErrNotOrderOwner
	}
	return order, nil
}

// ListOrders returns the requester's order history, newest first.
func (uc *OrderUC) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return uc.orderRepo.ListOrdersByUser(ctx, userID)
}

// AdvanceOrder moves an order to a later status and publishes the change.
// Reached only through the role-gated staff route.
func (uc *OrderUC) AdvanceOrder(ctx context.Context, orderID uuid.UUID, status string) error {
	if !models.ValidStatusUpdate(status) {
		return orders.ErrInvalidStatus
	}

	if err := uc.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}

	if err := uc.eventGW.PublishOrderStatusChanged(orderID, status); err != nil {
		logger.Warn("Failed to publish status change",
			logger.String("order_id", orderID.String()),
			logger.Err(err),
		)
	}

	logger.Info("Order status updated",
		logger.String("order_id", orderID.String()),
		logger.String("status", status),
	)
	return nil
}

// ProcessOrderCreated runs the fulfillment step: one transactional claim
// that reserves stock for every line and advances the order to processing.
// A redelivered event finds the order already claimed and is dropped, so
// stock is reserved at most once per order. Errors bubble up so the message
// is requeued.
func (uc *OrderUC) ProcessOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	processed, err := uc.orderRepo.FulfillOrder(ctx, event.OrderID, event.LocationID, event.Items)
	if err != nil {
		logger.Error("Stock reservation failed",
			logger.String("order_id", event.OrderID.String()),
			logger.Err(err),
		)
		return err
	}
	if !processed {
		logger.Info("Order already claimed, dropping event",
			logger.String("order_id", event.OrderID.String()),
		)
		return nil
	}

	if err := uc.eventGW.PublishOrderStatusChanged(event.OrderID, models.OrderStatusProcessing); err != nil {
		logger.Warn("Failed to publish status change",
			logger.String("order_id", event.OrderID.String()),
			logger.Err(err),
		)
	}

	logger.Info("Order moved to processing",
		logger.String("order_id", event.OrderID.String()),
	)
	return nil
}
