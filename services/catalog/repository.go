package catalog

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/freshcart/freshcart/services/catalog CatalogRepo

// CatalogRepo defines the catalog repository interface
type CatalogRepo interface {
	GetActiveLocations(ctx context.Context) ([]models.Location, error)
	GetLocationByID(ctx context.Context, id int) (*models.Location, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error)
}
