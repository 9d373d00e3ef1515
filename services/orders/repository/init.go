package repository

import (
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// OrderRepo implements the orders repository. Catalog lookups (fees, prices)
// go through the restricted handle. Order rows carry row-level security with
// no policy for the app role, so order reads, checkout, and the fulfillment
// mutations all run on the privileged handle and the usecase enforces
// ownership.
type OrderRepo struct {
	cfg        *models.Config
	db         *sqlx.DB
	privileged *sqlx.DB
}

// NewOrderRepo creates a new orders repository
func NewOrderRepo(cfg *models.Config, restricted, privileged *database.PostgresClient) *OrderRepo {
	return &OrderRepo{
		cfg:        cfg,
		db:         restricted.GetDB(),
		privileged: privileged.GetDB(),
	}
}
