package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	HouseNumber string    `json:"house_number"` // route/vehicle identifier for delivery personnel
	Address     string    `json:"address,omitempty"`
	Role        string    `json:"role"` // "resident" or "delivery_person"

	Subscriptions []*Subscription `gorm:"foreignKey:UserID"`
	Orders        []*Order        `gorm:"foreignKey:UserID"`
	Vacations     []*Vacation     `gorm:"foreignKey:UserID"`
	Cancellations []*Cancellation `gorm:"foreignKey:UserID"`
	Timestamp
}
