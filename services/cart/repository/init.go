package repository

import (
	"time"

	"github.com/freshcart/freshcart/internal/pkg/database"
)

// cartTTL keeps abandoned carts around for a week before they expire.
const cartTTL = 7 * 24 * time.Hour

// CartRepo implements the cart repository on Redis. Carts are transient
// by design; Postgres only sees them once they become orders.
type CartRepo struct {
	redisClient *database.RedisClient
}

// NewCartRepo creates a new cart repository
func NewCartRepo(redisClient *database.RedisClient) *CartRepo {
	return &CartRepo{redisClient: redisClient}
}
