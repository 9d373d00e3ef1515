package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshcart/freshcart/internal/pkg/constants"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/cart"
	"github.com/go-redis/redis/v8"
)

func cartKey(userID string, locationID int) string {
	return fmt.Sprintf(constants.KeyCart, userID, locationID)
}

// GetCart loads the cart slot for a user at one location.
func (r *CartRepo) GetCart(ctx context.Context, userID string, locationID int) (*models.Cart, error) {
	raw, err := r.redisClient.Get(ctx, cartKey(userID, locationID))
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

// SaveCart replaces the cart slot wholesale and refreshes its TTL.
func (r *CartRepo) SaveCart(ctx context.Context, c *models.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	key := cartKey(c.UserID, c.LocationID)
	if err := r.redisClient.Set(ctx, key, payload, cartTTL); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// DeleteCart discards the cart slot.
func (r *CartRepo) DeleteCart(ctx context.Context, userID string, locationID int) error {
	if err := r.redisClient.Delete(ctx, cartKey(userID, locationID)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
