package nsq

import (
	"encoding/json"
	"testing"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/orders"
	"github.com/freshcart/freshcart/services/orders/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFulfillmentTest(t *testing.T) (*FulfillmentHandler, *mocks.MockOrderUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	orderUC := mocks.NewMockOrderUC(ctrl)
	return NewFulfillmentHandler(orderUC), orderUC
}

func TestHandleOrderCreated(t *testing.T) {
	event := models.OrderCreatedEvent{
		OrderID:    uuid.New(),
		UserID:     uuid.New(),
		LocationID: 1,
		Items:      []models.OrderItemInput{{ProductID: 10, Quantity: 2}},
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("Delegates the decoded event", func(t *testing.T) {
		handler, orderUC := setupFulfillmentTest(t)

		orderUC.EXPECT().
			ProcessOrderCreated(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, got *models.OrderCreatedEvent) error {
				assert.Equal(t, event.OrderID, got.OrderID)
				assert.Equal(t, event.Items, got.Items)
				return nil
			})

		assert.NoError(t, handler.HandleOrderCreated(body))
	})

	t.Run("Processing failure propagates for requeue", func(t *testing.T) {
		handler, orderUC := setupFulfillmentTest(t)

		orderUC.EXPECT().ProcessOrderCreated(gomock.Any(), gomock.Any()).
			Return(orders.ErrInsufficientStock)

		assert.Error(t, handler.HandleOrderCreated(body))
	})

	t.Run("Malformed payload is dropped, not requeued", func(t *testing.T) {
		handler, _ := setupFulfillmentTest(t)

		assert.NoError(t, handler.HandleOrderCreated([]byte("{not json")))
	})
}
