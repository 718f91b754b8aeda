package models

import "gorm.io/gorm"

// Roles returned by login and carried in the JWT role claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account on the backend. The client never sees the password; it
// only exists here for the devserver's register/login handlers.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"password,omitempty" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role       string `json:"role" gorm:"type:varchar(10)" validate:"required,oneof=user admin"`
	gorm.Model `json:"-"`
}
