package services

import (
	"strings"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/google/uuid"
)

type ExpenseService interface {
	List(profileID uuid.UUID) ([]models.Expense, error)
	Save(expense *models.Expense) (*models.Expense, error)
	Delete(profileID, id uuid.UUID) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) List(profileID uuid.UUID) ([]models.Expense, error) {
	return s.expenseRepo.GetAll(profileID)
}

func (s *expenseService) Save(expense *models.Expense) (*models.Expense, error) {
	if strings.TrimSpace(expense.Category) == "" {
		return nil, validationf("expense category is required")
	}
	if expense.Amount < 0 {
		return nil, validationf("expense amount cannot be negative")
	}
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", expense.Date); err != nil {
		return nil, validationf("expense date must be YYYY-MM-DD")
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if err := s.expenseRepo.Save(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Delete(profileID, id uuid.UUID) error {
	return s.expenseRepo.Delete(profileID, id)
}
