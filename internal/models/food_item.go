package models

import "gorm.io/gorm"

// FoodItem represents a dish on the cafeteria menu. Items are created and
// removed by the owning admin; consumers only ever read them.
type FoodItem struct {
	ID          string  `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	AdminID     string  `json:"adminId" gorm:"type:varchar(36)"`
	gorm.Model  `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
