package devserver

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cafeteria/internal/models"
)

// Store wraps the simulator's database access. It is deliberately small: the
// simulator only needs what the endpoint contract needs.
type Store struct {
	db *gorm.DB
}

// NewStore migrates the schema and returns a Store.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.User{}, &models.FoodItem{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// CreateUser inserts a new user, assigning an ID when none is set.
func (s *Store) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UserByEmail looks a user up by email.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UserByUsername looks a user up by username.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user %s not found", username)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// AllItems returns every food item.
func (s *Store) AllItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// CreateItem inserts a new food item, assigning an ID when none is set.
func (s *Store) CreateItem(item *models.FoodItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// DeleteItem removes a food item by ID.
func (s *Store) DeleteItem(id string) error {
	res := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %s not found", id)
	}
	return nil
}

// CreateOrder inserts a new order as pending.
func (s *Store) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.Status = models.OrderPending
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// OrderByID looks an order up by ID.
func (s *Store) OrderByID(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// AllOrders returns every order.
func (s *Store) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// OrdersByUser returns one user's orders.
func (s *Store) OrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// CompleteOrder transitions an order to completed. The transition is one-way;
// completing an already-completed order is a no-op.
func (s *Store) CompleteOrder(id string) (*models.Order, error) {
	order, err := s.OrderByID(id)
	if err != nil {
		return nil, err
	}
	if order.Completed() {
		return order, nil
	}
	order.Status = models.OrderCompleted
	if err := s.db.Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to complete order %s: %w", id, err)
	}
	return order, nil
}

// RateOrder sets the rating on a completed order, overwriting any previous
// value. Pending orders cannot be rated.
func (s *Store) RateOrder(id string, rating int) error {
	order, err := s.OrderByID(id)
	if err != nil {
		return err
	}
	if !order.Completed() {
		return fmt.Errorf("order %s is not completed", id)
	}
	order.Rating = rating
	if err := s.db.Save(order).Error; err != nil {
		return fmt.Errorf("failed to rate order %s: %w", id, err)
	}
	return nil
}
