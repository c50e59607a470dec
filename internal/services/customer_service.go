package services

import (
	"errors"
	"strings"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	List(profileID uuid.UUID, search string) ([]models.Customer, error)
	Get(profileID, id uuid.UUID) (*models.Customer, error)
	Save(customer *models.Customer) (*models.Customer, error)
	Delete(profileID, id uuid.UUID) error
	FindByMobile(profileID uuid.UUID, mobile string) (*models.Customer, error)
	GetMeasurements(profileID, customerID uuid.UUID) ([]models.Measurement, error)
}

type customerService struct {
	customerRepo    repository.CustomerRepository
	measurementRepo repository.MeasurementRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, measurementRepo repository.MeasurementRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, measurementRepo: measurementRepo}
}

// List returns the profile's customers newest first, narrowed by a
// case-insensitive substring match over name or mobile. An empty search
// returns everything.
func (s *customerService) List(profileID uuid.UUID, search string) ([]models.Customer, error) {
	customers, err := s.customerRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}
	return FilterCustomers(customers, search), nil
}

// FilterCustomers applies the search semantics shared by the customer and
// order lists.
func FilterCustomers(customers []models.Customer, search string) []models.Customer {
	if search == "" {
		return customers
	}
	needle := strings.ToLower(search)
	matched := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Mobile, needle) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (s *customerService) Get(profileID, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(profileID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Save(customer *models.Customer) (*models.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, validationf("customer name is required")
	}
	if strings.TrimSpace(customer.Mobile) == "" {
		return nil, validationf("mobile number is required")
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := s.customerRepo.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete is permanent; measurements and orders cascade at the database.
func (s *customerService) Delete(profileID, id uuid.UUID) error {
	return s.customerRepo.Delete(profileID, id)
}

func (s *customerService) FindByMobile(profileID uuid.UUID, mobile string) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByMobile(profileID, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetMeasurements(profileID, customerID uuid.UUID) ([]models.Measurement, error) {
	return s.measurementRepo.GetForCustomer(profileID, customerID)
}
