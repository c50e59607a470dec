package repository

import (
	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(profileID, id uuid.UUID) (*models.Order, error)
	GetAll(profileID uuid.UUID) ([]models.Order, error)
	UpdateStatus(profileID, id uuid.UUID, status models.OrderStatus, advanceAmount *float64) error
	Delete(profileID, id uuid.UUID) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create writes the order and its items in one transaction.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(profileID, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "profile_id = ? AND id = ?", profileID, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(profileID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("profile_id = ?", profileID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus writes the status and, when settling on delivery, the advance
// amount in a single UPDATE so the two never diverge.
func (r *orderRepository) UpdateStatus(profileID, id uuid.UUID, status models.OrderStatus, advanceAmount *float64) error {
	updates := map[string]interface{}{"status": status}
	if advanceAmount != nil {
		updates["advance_amount"] = *advanceAmount
	}
	result := r.db.Model(&models.Order{}).
		Where("profile_id = ? AND id = ?", profileID, id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Delete(profileID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("profile_id = ?", profileID).Delete(&models.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
