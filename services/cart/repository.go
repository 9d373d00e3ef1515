package cart

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/freshcart/freshcart/services/cart CartRepo

// CartRepo defines the cart repository interface
type CartRepo interface {
	GetCart(ctx context.Context, userID string, locationID int) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string, locationID int) error
}
