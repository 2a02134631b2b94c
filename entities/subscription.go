package entities

import (
	"github.com/google/uuid"
)

const FrequencyDaily = "daily"

type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index" json:"user_id"`
	Frequency string    `json:"frequency"` // "daily"
	IsActive  bool      `json:"is_active"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*SubscriptionItem `gorm:"foreignKey:SubscriptionID"`
	Timestamp
}

type SubscriptionItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SubscriptionID uuid.UUID `gorm:"uniqueIndex:ux_subscription_items_product" json:"subscription_id"`
	ProductID      uuid.UUID `gorm:"uniqueIndex:ux_subscription_items_product" json:"product_id"`
	Quantity       int       `json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
