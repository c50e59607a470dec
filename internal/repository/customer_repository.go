package repository

import (
	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Save(customer *models.Customer) error
	GetByID(profileID, id uuid.UUID) (*models.Customer, error)
	GetAll(profileID uuid.UUID) ([]models.Customer, error)
	FindByMobile(profileID uuid.UUID, mobile string) (*models.Customer, error)
	Delete(profileID, id uuid.UUID) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Save(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) GetByID(profileID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "profile_id = ? AND id = ?", profileID, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll(profileID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) FindByMobile(profileID uuid.UUID, mobile string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "profile_id = ? AND mobile = ?", profileID, mobile).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Delete(profileID, id uuid.UUID) error {
	return r.db.Where("profile_id = ?", profileID).Delete(&models.Customer{}, "id = ?", id).Error
}
