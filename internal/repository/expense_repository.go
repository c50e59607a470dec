package repository

import (
	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Save(expense *models.Expense) error
	GetAll(profileID uuid.UUID) ([]models.Expense, error)
	Delete(profileID, id uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Save(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepository) GetAll(profileID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("profile_id = ?", profileID).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Delete(profileID, id uuid.UUID) error {
	return r.db.Where("profile_id = ?", profileID).Delete(&models.Expense{}, "id = ?", id).Error
}
