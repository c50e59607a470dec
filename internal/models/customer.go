package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Mobile    string    `json:"mobile" gorm:"index;not null"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	Measurements []Measurement `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Orders       []Order       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
