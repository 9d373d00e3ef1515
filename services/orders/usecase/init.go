package usecase

import (
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/cart"
	"github.com/freshcart/freshcart/services/orders"
)

// OrderUC implements the orders usecase
type OrderUC struct {
	orderRepo orders.OrderRepo
	eventGW   orders.EventGW
	cartUC    cart.CartUC
	cfg       *models.Config
}

// NewOrderUC creates a new orders usecase
func NewOrderUC(
	orderRepo orders.OrderRepo,
	eventGW orders.EventGW,
	cartUC cart.CartUC,
	cfg *models.Config,
) *OrderUC {
	return &OrderUC{
		orderRepo: orderRepo,
		eventGW:   eventGW,
		cartUC:    cartUC,
		cfg:       cfg,
	}
}
