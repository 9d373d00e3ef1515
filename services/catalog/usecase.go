package catalog

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/freshcart/freshcart/services/catalog CatalogUC

// CatalogUC represents the catalog usecase interface
type CatalogUC interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	NearestLocation(ctx context.Context, lat, lng float64) (*models.NearestLocation, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error)

	// SeedLocationIndex loads all active delivery areas into the geo index.
	// Called once at startup.
	SeedLocationIndex(ctx context.Context) error
}
