package models

import (
	"time"

	"github.com/google/uuid"
)

type Design struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
