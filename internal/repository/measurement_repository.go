package repository

import (
	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeasurementRepository interface {
	GetForCustomer(profileID, customerID uuid.UUID) ([]models.Measurement, error)
	Upsert(measurement *models.Measurement) error
}

type measurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) GetForCustomer(profileID, customerID uuid.UUID) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := r.db.Where("profile_id = ? AND customer_id = ?", profileID, customerID).Find(&measurements).Error
	return measurements, err
}

// Upsert overwrites the measurement set for the (customer, garment type)
// pair when one already exists.
func (r *measurementRepository) Upsert(measurement *models.Measurement) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "garment_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"values", "notes", "updated_at"}),
	}).Create(measurement).Error
}
