package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the shop-owning account. All other entities belong to exactly
// one profile. The PIN gates the unlock screen; it is stored as entered
// (4 digits) to stay compatible with the existing data format.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShopName     string    `json:"shop_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Mobile       string    `json:"mobile"`
	Address      string    `json:"address"`
	GSTIn        string    `json:"gst_in" gorm:"column:gst_in"`
	LogoURL      string    `json:"logo_url"`
	PIN          string    `json:"-" gorm:"column:pin;not null;default:'0000'"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AppConfig is the settings view of a profile.
type AppConfig struct {
	ShopName string `json:"shop_name"`
	PIN      string `json:"pin"`
	LogoURL  string `json:"logo_url,omitempty"`
}
