package models

import "time"

// Order statuses. The lifecycle is one-way: pending -> completed.
const (
	OrderPending   = "Pending"
	OrderCompleted = "Completed"
)

// Order is a persisted purchase record. TotalPrice is fixed when the order is
// placed; later price changes to the food item never touch it.
type Order struct {
	ID         string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	FoodItemID string    `json:"foodItemId" gorm:"type:varchar(36)" validate:"required"`
	UserID     string    `json:"userId" gorm:"type:varchar(36)" validate:"required"`
	AdminID    string    `json:"adminId" gorm:"type:varchar(36)"`
	Quantity   int       `json:"quantity" validate:"gte=1"`
	TotalPrice float64   `json:"totalPrice" validate:"gte=0"`
	Status     string    `json:"status"`
	Rating     int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"` // 0 = unrated
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

// Completed reports whether the order has reached its terminal status.
func (o Order) Completed() bool {
	return o.Status == OrderCompleted
}
