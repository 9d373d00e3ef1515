package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/freshcart/freshcart/internal/pkg/constants"
	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/catalog"
	"github.com/mmcloughlin/geohash"
)

const (
	// searchRadiusKm bounds the nearest-location lookup. Points further
	// than this from every delivery area are out of coverage.
	searchRadiusKm = 50.0

	geohashPrecision = 6
)

// ListLocations returns all active delivery areas.
func (uc *CatalogUC) ListLocations(ctx context.Context) ([]models.Location, error) {
	return uc.catalogRepo.GetActiveLocations(ctx)
}

// SeedLocationIndex loads every active delivery area into the Redis geo
// index keyed by location ID.
func (uc *CatalogUC) SeedLocationIndex(ctx context.Context) error {
	locations, err := uc.catalogRepo.GetActiveLocations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load locations for geo index: %w", err)
	}

	for _, loc := range locations {
		member := strconv.Itoa(loc.ID)
		if err := uc.redisClient.GeoAdd(ctx, constants.KeyLocationsGeo, loc.Longitude, loc.Latitude, member); err != nil {
			return fmt.Errorf("failed to index location %d: %w", loc.ID, err)
		}
	}

	logger.Info("Seeded location geo index",
		logger.Int("count", len(locations)),
	)
	return nil
}

// NearestLocation finds the delivery area closest to the given point.
func (uc *CatalogUC) NearestLocation(ctx context.Context, lat, lng float64) (*models.NearestLocation, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, catalog.ErrInvalidCoordinates
	}

	results, err := uc.redisClient.GeoRadius(ctx, constants.KeyLocationsGeo, lng, lat, searchRadiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}
	if len(results) == 0 {
		return nil, catalog.ErrOutOfDeliveryArea
	}

	// results are sorted nearest first
	nearest := results[0]
	id, err := strconv.Atoi(nearest.Name)
	if err != nil {
		return nil, fmt.Errorf("malformed geo index member %q: %w", nearest.Name, err)
	}

	location, err := uc.catalogRepo.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.NearestLocation{
		Location:   *location,
		DistanceKm: nearest.Dist,
		Geohash:    geohash.EncodeWithPrecision(location.Latitude, location.Longitude, geohashPrecision),
	}, nil
}

// ListCategories returns all categories in display order.
func (uc *CatalogUC) ListCategories(ctx context.Context) ([]models.Category, error) {
	return uc.catalogRepo.GetCategories(ctx)
}

// ListProducts lists products in stock at the filter's location.
func (uc *CatalogUC) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error) {
	if filter == nil || filter.LocationID <= 0 {
		return nil, catalog.ErrLocationRequired
	}
	return uc.catalogRepo.GetProducts(ctx, filter)
}
