package models

import (
	"github.com/google/uuid"
)

// OrderItem is a priced garment line within an order. The measurement
// snapshot is a frozen copy taken at order time; the live Measurement row
// stays independently editable.
type OrderItem struct {
	ID                  uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID   `json:"order_id" gorm:"type:uuid;index;not null"`
	GarmentType         GarmentType `json:"garment_type" gorm:"not null"`
	Qty                 int         `json:"qty" gorm:"not null;default:1"`
	Price               float64     `json:"price" gorm:"not null"`
	MeasurementSnapshot ValueMap    `json:"measurement_snapshot,omitempty" gorm:"type:jsonb"`
}
