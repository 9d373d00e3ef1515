package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/catalog"
	"github.com/freshcart/freshcart/services/catalog/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogHandlerTest(t *testing.T) (*CatalogHandler, *mocks.MockCatalogUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	catalogUC := mocks.NewMockCatalogUC(ctrl)
	return NewCatalogHandler(catalogUC), catalogUC
}

func doGET(e *echo.Echo, target string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestListLocationsHandler(t *testing.T) {
	handler, catalogUC := setupCatalogHandlerTest(t)
	e := echo.New()

	catalogUC.EXPECT().ListLocations(gomock.Any()).
		Return([]models.Location{{ID: 1, Name: "Midtown"}}, nil)

	rec, c := doGET(e, "/locations")
	require.NoError(t, handler.ListLocations(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var locations []models.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "Midtown", locations[0].Name)
}

func TestNearestLocationHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, catalogUC := setupCatalogHandlerTest(t)
		e := echo.New()

		catalogUC.EXPECT().NearestLocation(gomock.Any(), 40.7128, -74.0060).
			Return(&models.NearestLocation{
				Location:   models.Location{ID: 2, Name: "Sunset Park"},
				DistanceKm: 7.8,
				Geohash:    "dr5reg",
			}, nil)

		rec, c := doGET(e, "/locations/nearest?lat=40.7128&lng=-74.0060")
		require.NoError(t, handler.NearestLocation(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var nearest models.NearestLocation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nearest))
		assert.Equal(t, 2, nearest.ID)
		assert.Equal(t, "dr5reg", nearest.Geohash)
	})

	t.Run("Missing coordinates rejected", func(t *testing.T) {
		handler, _ := setupCatalogHandlerTest(t)
		e := echo.New()

		rec, c := doGET(e, "/locations/nearest?lat=40.7128")
		require.NoError(t, handler.NearestLocation(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Out of coverage maps to 404", func(t *testing.T) {
		handler, catalogUC := setupCatalogHandlerTest(t)
		e := echo.New()

		catalogUC.EXPECT().NearestLocation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, catalog.ErrOutOfDeliveryArea)

		rec, c := doGET(e, "/locations/nearest?lat=0&lng=0")
		require.NoError(t, handler.NearestLocation(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Passes filters through", func(t *testing.T) {
		handler, catalogUC := setupCatalogHandlerTest(t)
		e := echo.New()

		catalogUC.EXPECT().
			ListProducts(gomock.Any(), &models.ProductFilter{LocationID: 1, CategoryID: 2, Query: "milk"}).
			Return([]models.Product{{ID: 20, Name: "Whole Milk"}}, nil)

		rec, c := doGET(e, "/products?location_id=1&category_id=2&q=milk")
		require.NoError(t, handler.ListProducts(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Non-numeric location rejected", func(t *testing.T) {
		handler, _ := setupCatalogHandlerTest(t)
		e := echo.New()

		rec, c := doGET(e, "/products?location_id=abc")
		require.NoError(t, handler.ListProducts(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing location maps to 400", func(t *testing.T) {
		handler, catalogUC := setupCatalogHandlerTest(t)
		e := echo.New()

		catalogUC.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
			Return(nil, catalog.ErrLocationRequired)

		rec, c := doGET(e, "/products")
		require.NoError(t, handler.ListProducts(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListCategoriesHandler(t *testing.T) {
	handler, catalogUC := setupCatalogHandlerTest(t)
	e := echo.New()

	catalogUC.EXPECT().ListCategories(gomock.Any()).
		Return([]models.Category{{ID: 1, Name: "Produce"}, {ID: 2, Name: "Dairy"}}, nil)

	rec, c := doGET(e, "/categories")
	require.NoError(t, handler.ListCategories(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 2)
}
