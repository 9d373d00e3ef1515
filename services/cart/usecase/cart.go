package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/cart"
)

// GetCart returns the user's cart at the given location. A missing slot is
// not an error; shoppers simply have an empty cart until they put something
// in it.
func (uc *CartUC) GetCart(ctx context.Context, userID string, locationID int) (*models.Cart, error) {
	if locationID <= 0 {
		return nil, cart.ErrLocationRequired
	}

	c, err := uc.cartRepo.GetCart(ctx, userID, locationID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return &models.Cart{
			UserID:     userID,
			LocationID: locationID,
			Items:      []models.CartItem{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCart validates and stores the cart wholesale. An empty item list is a
// legal write; it empties the slot without discarding it.
func (uc *CartUC) SaveCart(ctx context.Context, c *models.Cart) error {
	if c.LocationID <= 0 {
		return cart.ErrLocationRequired
	}
	for _, item := range c.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return cart.ErrInvalidItem
		}
	}

	c.UpdatedAt = time.Now()
	return uc.cartRepo.SaveCart(ctx, c)
}

// ClearCart discards the cart slot entirely.
func (uc *CartUC) ClearCart(ctx context.Context, userID string, locationID int) error {
	if locationID <= 0 {
		return cart.ErrLocationRequired
	}
	return uc.cartRepo.DeleteCart(ctx, userID, locationID)
}
