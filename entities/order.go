package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"uniqueIndex:ux_orders_user_date" json:"user_id"`
	Date    time.Time `gorm:"type:date;index;uniqueIndex:ux_orders_user_date" json:"date"`
	IsAdhoc bool      `json:"is_adhoc"`
	Status  string    `json:"status"` // "pending", "delivered", "cancelled"

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `gorm:"uniqueIndex:ux_order_items_product" json:"order_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:ux_order_items_product" json:"product_id"`
	Quantity  int       `json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
