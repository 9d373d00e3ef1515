package cart

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/freshcart/freshcart/services/cart CartUC

// CartUC represents the cart usecase interface
type CartUC interface {
	GetCart(ctx context.Context, userID string, locationID int) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	ClearCart(ctx context.Context, userID string, locationID int) error
}
