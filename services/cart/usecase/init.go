package usecase

import (
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/cart"
)

// CartUC implements the cart usecase
type CartUC struct {
	cartRepo cart.CartRepo
	cfg      *models.Config
}

// NewCartUC creates a new cart usecase
func NewCartUC(cartRepo cart.CartRepo, cfg *models.Config) *CartUC {
	return &CartUC{
		cartRepo: cartRepo,
		cfg:      cfg,
	}
}
