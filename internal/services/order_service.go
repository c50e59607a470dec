package services

import (
	"errors"
	"strings"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderFilter string

const (
	FilterAll       OrderFilter = "ALL"
	FilterPending   OrderFilter = "PENDING"
	FilterDelivered OrderFilter = "DELIVERED"
)

// OrderView pairs an order with the customer details the list screens show.
type OrderView struct {
	models.Order
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
}

type OrderService interface {
	List(profileID uuid.UUID, filter OrderFilter, search string) ([]OrderView, error)
	Get(profileID, id uuid.UUID) (*models.Order, error)
	UpdateStatus(profileID, id uuid.UUID, status models.OrderStatus, confirmSettle bool) error
	Delete(profileID, id uuid.UUID) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, customerRepo: customerRepo}
}

// List returns orders newest first. Orders whose customer no longer exists
// are dropped, matching the list screen's behavior.
func (s *orderService) List(profileID uuid.UUID, filter OrderFilter, search string) ([]OrderView, error) {
	orders, err := s.orderRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	needle := strings.ToLower(search)
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		c, ok := byID[o.CustomerID]
		if !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) && !strings.Contains(c.Mobile, needle) {
			continue
		}
		if !matchesFilter(o.Status, filter) {
			continue
		}
		views = append(views, OrderView{Order: o, CustomerName: c.Name, CustomerMobile: c.Mobile})
	}
	return views, nil
}

func matchesFilter(status models.OrderStatus, filter OrderFilter) bool {
	switch filter {
	case FilterPending:
		return status != models.StatusDelivered && status != models.StatusCompleted
	case FilterDelivered:
		return status == models.StatusDelivered
	default:
		return true
	}
}

func (s *orderService) Get(profileID, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(profileID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets any status from any other; the lifecycle ordering is not
// enforced. Marking Delivered with an outstanding balance requires the
// operator's confirmation, and confirming settles the order: the advance is
// raised to the total in the same write as the status.
func (s *orderService) UpdateStatus(profileID, id uuid.UUID, status models.OrderStatus, confirmSettle bool) error {
	if !status.Valid() {
		return validationf("unknown order status %q", status)
	}
	order, err := s.Get(profileID, id)
	if err != nil {
		return err
	}
	if status == order.Status {
		return nil
	}

	var advance *float64
	if status == models.StatusDelivered {
		if bal := order.BalanceDue(); bal > 0 {
			if !confirmSettle {
				return &SettlementRequiredError{BalanceDue: bal}
			}
			settled := order.TotalAmount
			advance = &settled
		}
	}

	if err := s.orderRepo.UpdateStatus(profileID, id, status, advance); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete is permanent; items go with the order.
func (s *orderService) Delete(profileID, id uuid.UUID) error {
	if err := s.orderRepo.Delete(profileID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
