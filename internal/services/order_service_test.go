package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
	"cafeteria/internal/services"
)

func TestPartition(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: models.OrderPending},
		{ID: "o2", Status: models.OrderCompleted},
		{ID: "o3", Status: models.OrderPending},
	}

	pending, completed := services.Partition(orders)
	require.Len(t, pending, 2)
	require.Len(t, completed, 1)
	assert.Equal(t, "o2", completed[0].ID)
}

func TestOrderService_StaleOnFetchError(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	orders := []models.Order{{ID: "o1", Status: models.OrderPending}}
	backend.On("ListAdminOrders", mock.Anything).Return(orders, nil).Once()
	backend.On("ListAdminOrders", mock.Anything).Return(nil, fmt.Errorf("network down")).Once()

	got := svc.AllOrders(context.Background())
	require.Len(t, got, 1)

	// The failed refresh keeps the previous list.
	got = svc.AllOrders(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
	backend.AssertExpectations(t)
}

func TestOrderService_PurchasedItemsStaleOnError(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	backend.On("ListPurchasedItems", mock.Anything).Return(nil, fmt.Errorf("network down")).Once()

	// A failure with no prior fetch yields an empty list, not an error.
	got := svc.PurchasedItems(context.Background())
	assert.Empty(t, got)
}

func TestOrderService_CompleteNotifiesOwnerOnce(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	orders := []models.Order{{ID: "o1", UserID: "u1", Status: models.OrderPending}}
	backend.On("ListAdminOrders", mock.Anything).Return(orders, nil).Once()
	svc.AllOrders(context.Background())

	notified := make(chan struct{})
	backend.On("CompleteOrder", mock.Anything, "o1").Return(nil).Once()
	backend.On("SendNotification", mock.Anything, api.Notification{
		UserID:  "u1",
		Message: "Your order has been completed!",
	}).Return(nil).Once().Run(func(mock.Arguments) { close(notified) })

	require.NoError(t, svc.Complete(context.Background(), "o1"))

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
	backend.AssertNumberOfCalls(t, "SendNotification", 1)
	backend.AssertExpectations(t)
}

func TestOrderService_CompleteSurvivesNotifyFailure(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	orders := []models.Order{{ID: "o1", UserID: "u1", Status: models.OrderPending}}
	backend.On("ListAdminOrders", mock.Anything).Return(orders, nil).Once()
	svc.AllOrders(context.Background())

	notified := make(chan struct{})
	backend.On("CompleteOrder", mock.Anything, "o1").Return(nil).Once()
	backend.On("SendNotification", mock.Anything, mock.Anything).
		Return(fmt.Errorf("mail server down")).Once().
		Run(func(mock.Arguments) { close(notified) })

	// The notify failure is logged, never propagated.
	require.NoError(t, svc.Complete(context.Background(), "o1"))

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestOrderService_CompleteFailureSkipsNotification(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	backend.On("CompleteOrder", mock.Anything, "o1").Return(fmt.Errorf("not found")).Once()

	err := svc.Complete(context.Background(), "o1")
	assert.Error(t, err)
	backend.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
}

func TestOrderService_RatePendingRejected(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	order := models.Order{ID: "o1", Status: models.OrderPending}
	err := svc.Rate(context.Background(), order, 4)
	assert.Error(t, err)
	backend.AssertNotCalled(t, "RateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_RateOutOfRangeRejected(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	order := models.Order{ID: "o1", Status: models.OrderCompleted}
	for _, rating := range []int{0, -1, 6} {
		err := svc.Rate(context.Background(), order, rating)
		assert.Error(t, err, "rating %d must be rejected", rating)
	}
	backend.AssertNotCalled(t, "RateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_RateCompletedOverwrites(t *testing.T) {
	backend := new(MockBackend)
	svc := services.NewOrderService(backend)

	order := models.Order{ID: "o1", Status: models.OrderCompleted}
	backend.On("RateOrder", mock.Anything, "o1", 3).Return(nil).Once()
	backend.On("RateOrder", mock.Anything, "o1", 5).Return(nil).Once()

	// Last write wins: both submissions go through.
	require.NoError(t, svc.Rate(context.Background(), order, 3))
	require.NoError(t, svc.Rate(context.Background(), order, 5))
	backend.AssertExpectations(t)
}
