package migrations

import (
	"log"

	"tailor_shop/internal/models"

	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Profile{},
		&models.Customer{},
		&models.Measurement{},
		&models.Order{},
		&models.OrderItem{},
		&models.Expense{},
		&models.Design{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed successfully!")
	return nil
}
