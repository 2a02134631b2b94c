package entities

import (
	"github.com/google/uuid"
)

const (
	CancellationTypeSubscription = "subscription"
	CancellationTypeOrder        = "order"
)

// Cancellation is an append-only audit record. Rows are never updated or
// deleted after creation.
type Cancellation struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID  `gorm:"index" json:"user_id"`
	CancellationType string     `json:"cancellation_type"` // "subscription" or "order"
	ReferenceID      *uuid.UUID `gorm:"type:uuid" json:"reference_id,omitempty"`
	Reason           string     `gorm:"type:text" json:"reason,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
