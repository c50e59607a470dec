package models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;index;not null"`
	Category  string    `json:"category" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Note      string    `json:"note"`
	Date      string    `json:"date" gorm:"not null"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
