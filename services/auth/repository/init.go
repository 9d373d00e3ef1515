package repository

import (
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// UserRepo holds both database handles: the restricted one for ordinary
// reads and the privileged one for provisioning and fallback lookups.
type UserRepo struct {
	cfg        *models.Config
	db         *sqlx.DB
	privileged *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, restricted, privileged *database.PostgresClient) *UserRepo {
	return &UserRepo{
		cfg:        cfg,
		db:         restricted.GetDB(),
		privileged: privileged.GetDB(),
	}
}
