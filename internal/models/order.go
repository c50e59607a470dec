package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusDraft     OrderStatus = "Draft"
	StatusReceived  OrderStatus = "Received"
	StatusCutting   OrderStatus = "Cutting"
	StatusStitching OrderStatus = "Stitching"
	StatusCompleted OrderStatus = "Completed"
	StatusDelivered OrderStatus = "Delivered"
)

// OrderStatuses lists the lifecycle stages in workshop order. Transitions
// are not restricted to this ordering; operators may set any status.
var OrderStatuses = []OrderStatus{
	StatusDraft, StatusReceived, StatusCutting, StatusStitching, StatusCompleted, StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Order struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID     uuid.UUID   `json:"profile_id" gorm:"type:uuid;index;not null"`
	CustomerID    uuid.UUID   `json:"customer_id" gorm:"type:uuid;index;not null"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'Received'"`
	DeliveryDate  string      `json:"delivery_date" gorm:"not null"` // YYYY-MM-DD
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	AdvanceAmount float64     `json:"advance_amount" gorm:"not null;default:0"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`

	Items []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
}

// BalanceDue is the outstanding amount, clamped to zero when overpaid.
func (o *Order) BalanceDue() float64 {
	if bal := o.TotalAmount - o.AdvanceAmount; bal > 0 {
		return bal
	}
	return 0
}

// Ref is the short receipt reference shown to customers: the last five
// characters of the order id.
func (o *Order) Ref() string {
	s := o.ID.String()
	return s[len(s)-5:]
}
