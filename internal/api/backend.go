package api

import (
	"context"

	"cafeteria/internal/models"
)

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// Notification asks the backend to tell a user their order is done.
type Notification struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// Backend is the REST API the storefront talks to. One method per endpoint;
// implementations carry the bearer token themselves.
type Backend interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, email, password string) (LoginResult, error)

	ListUserItems(ctx context.Context) ([]models.FoodItem, error)
	ListAdminItems(ctx context.Context) ([]models.FoodItem, error)
	UploadItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error)
	DeleteItem(ctx context.Context, id string) error

	PlaceOrder(ctx context.Context, order models.Order) (models.Order, error)
	ListPurchasedItems(ctx context.Context) ([]models.Order, error)
	ListAdminOrders(ctx context.Context) ([]models.Order, error)
	CompleteOrder(ctx context.Context, id string) error
	RateOrder(ctx context.Context, id string, rating int) error
	SendNotification(ctx context.Context, n Notification) error
}
