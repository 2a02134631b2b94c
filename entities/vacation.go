package entities

import (
	"time"

	"github.com/google/uuid"
)

type Vacation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index" json:"user_id"`
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
