package models

import (
	"time"

	"github.com/google/uuid"
)

// Measurement is the current measurement set for one customer and garment
// type. Saves overwrite the existing row (unique on customer_id +
// garment_type); no history is kept.
type Measurement struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID   uuid.UUID   `json:"profile_id" gorm:"type:uuid;index;not null"`
	CustomerID  uuid.UUID   `json:"customer_id" gorm:"type:uuid;not null;uniqueIndex:idx_customer_garment"`
	GarmentType GarmentType `json:"garment_type" gorm:"not null;uniqueIndex:idx_customer_garment"`
	Values      ValueMap    `json:"values" gorm:"type:jsonb"`
	Notes       string      `json:"notes"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
