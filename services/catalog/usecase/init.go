package usecase

import (
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/catalog"
)

// CatalogUC implements the catalog usecase
type CatalogUC struct {
	catalogRepo catalog.CatalogRepo
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewCatalogUC creates a new catalog usecase
func NewCatalogUC(
	catalogRepo catalog.CatalogRepo,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *CatalogUC {
	return &CatalogUC{
		catalogRepo: catalogRepo,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
