package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/cart"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (*CartRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { redisClient.Close() })

	return NewCartRepo(redisClient), mr
}

func testCart(userID string) *models.Cart {
	return &models.Cart{
		UserID:     userID,
		LocationID: 1,
		Items: []models.CartItem{
			{ProductID: 10, Name: "Bananas", Price: 0.69, Quantity: 6},
			{ProductID: 20, Name: "Whole Milk", Price: 3.49, Quantity: 1},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestCartRoundTrip(t *testing.T) {
	repo, _ := setupCartRepoTest(t)
	ctx := context.Background()

	saved := testCart("u-1")
	require.NoError(t, repo.SaveCart(ctx, saved))

	loaded, err := repo.GetCart(ctx, "u-1", 1)
	require.NoError(t, err)
	assert.Equal(t, saved.Items, loaded.Items)
	assert.Equal(t, 1, loaded.LocationID)
}

func TestGetCartMissing(t *testing.T) {
	repo, _ := setupCartRepoTest(t)

	loaded, err := repo.GetCart(context.Background(), "u-1", 1)

	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

func TestSaveCartOverwrites(t *testing.T) {
	repo, _ := setupCartRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, testCart("u-1")))

	replacement := &models.Cart{
		UserID:     "u-1",
		LocationID: 1,
		Items:      []models.CartItem{{ProductID: 30, Name: "Eggs", Price: 4.99, Quantity: 1}},
	}
	require.NoError(t, repo.SaveCart(ctx, replacement))

	loaded, err := repo.GetCart(ctx, "u-1", 1)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 30, loaded.Items[0].ProductID)
}

func TestCartsAreScopedByLocation(t *testing.T) {
	repo, _ := setupCartRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, testCart("u-1")))

	_, err := repo.GetCart(ctx, "u-1", 2)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

func TestDeleteCart(t *testing.T) {
	repo, _ := setupCartRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, testCart("u-1")))
	require.NoError(t, repo.DeleteCart(ctx, "u-1", 1))

	_, err := repo.GetCart(ctx, "u-1", 1)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

func TestCartExpires(t *testing.T) {
	repo, mr := setupCartRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, testCart("u-1")))

	mr.FastForward(cartTTL + time.Minute)

	_, err := repo.GetCart(ctx, "u-1", 1)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}
