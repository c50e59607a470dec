package repository

import (
	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DesignRepository interface {
	Create(design *models.Design) error
	GetAll(profileID uuid.UUID) ([]models.Design, error)
	Delete(profileID, id uuid.UUID) error
}

type designRepository struct {
	db *gorm.DB
}

func NewDesignRepository(db *gorm.DB) DesignRepository {
	return &designRepository{db: db}
}

func (r *designRepository) Create(design *models.Design) error {
	return r.db.Create(design).Error
}

func (r *designRepository) GetAll(profileID uuid.UUID) ([]models.Design, error) {
	var designs []models.Design
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&designs).Error
	return designs, err
}

func (r *designRepository) Delete(profileID, id uuid.UUID) error {
	return r.db.Where("profile_id = ?", profileID).Delete(&models.Design{}, "id = ?", id).Error
}
