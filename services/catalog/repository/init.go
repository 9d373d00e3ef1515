package repository

import (
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// CatalogRepo implements the catalog repository on the restricted
// database handle. Catalog data is world-readable, so the privileged
// credentials are never needed here.
type CatalogRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(cfg *models.Config, client *database.PostgresClient) *CatalogRepo {
	return &CatalogRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}
