package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
)

// Message sent with the completion notification.
const orderCompletedMessage = "Your order has been completed!"

// OrderService covers both sides of the order status view: the user's
// purchased items and the admin's full order set, plus the pending->completed
// transition and ratings.
type OrderService struct {
	backend api.Backend

	mu          sync.Mutex
	userOrders  []models.Order
	adminOrders []models.Order
}

// NewOrderService creates an OrderService.
func NewOrderService(backend api.Backend) *OrderService {
	return &OrderService{backend: backend}
}

// PurchasedItems returns the calling user's orders, refreshing from the
// backend. On failure the last fetched list is returned unchanged.
func (s *OrderService) PurchasedItems(ctx context.Context) []models.Order {
	orders, err := s.backend.ListPurchasedItems(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error fetching purchased items: %v", err)
		return s.userOrders
	}
	s.userOrders = orders
	return s.userOrders
}

// AllOrders returns every order, for the admin view. Same stale-on-error
// semantics as PurchasedItems.
func (s *OrderService) AllOrders(ctx context.Context) []models.Order {
	orders, err := s.backend.ListAdminOrders(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		return s.adminOrders
	}
	s.adminOrders = orders
	return s.adminOrders
}

// Partition splits orders into pending and completed by status. It is a pure
// projection computed at render time, nothing is stored.
func Partition(orders []models.Order) (pending, completed []models.Order) {
	for _, order := range orders {
		if order.Completed() {
			completed = append(completed, order)
		} else {
			pending = append(pending, order)
		}
	}
	return pending, completed
}

// Complete marks a pending order completed, then notifies the owning user in
// the background. The notification is best effort: its failure is logged and
// never rolls back or fails the completion.
func (s *OrderService) Complete(ctx context.Context, orderID string) error {
	if err := s.backend.CompleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to complete order %s: %w", orderID, err)
	}

	userID := s.ownerOf(orderID)
	if userID == "" {
		log.Printf("No user found for order %s, skipping notification", orderID)
		return nil
	}

	go func() {
		notification := api.Notification{UserID: userID, Message: orderCompletedMessage}
		if err := s.backend.SendNotification(context.Background(), notification); err != nil {
			log.Printf("Error sending completion notification for order %s: %v", orderID, err)
		}
	}()

	return nil
}

// ownerOf finds the purchasing user in the last fetched admin order list.
func (s *OrderService) ownerOf(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.adminOrders {
		if order.ID == orderID {
			return order.UserID
		}
	}
	return ""
}

// Rate attaches a 1-5 rating to a completed order. Rating a pending order is
// rejected before any request is made; re-rating overwrites the previous value
// (last write wins).
func (s *OrderService) Rate(ctx context.Context, order models.Order, rating int) error {
	if !order.Completed() {
		return fmt.Errorf("order %s is not completed yet", order.ID)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if err := s.backend.RateOrder(ctx, order.ID, rating); err != nil {
		return fmt.Errorf("failed to rate order %s: %w", order.ID, err)
	}
	return nil
}
