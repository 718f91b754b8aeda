package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
)

// MockBackend is a mock implementation of api.Backend.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Register(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (api.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(api.LoginResult), args.Error(1)
}

func (m *MockBackend) ListUserItems(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockBackend) ListAdminItems(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockBackend) UploadItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.FoodItem), args.Error(1)
}

func (m *MockBackend) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) PlaceOrder(ctx context.Context, order models.Order) (models.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockBackend) ListPurchasedItems(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockBackend) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockBackend) CompleteOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) RateOrder(ctx context.Context, id string, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockBackend) SendNotification(ctx context.Context, n api.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
