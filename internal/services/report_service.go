package services

import (
	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/google/uuid"
)

// ReportSummary is the shop's financial overview. Collected means revenue
// actually received (advances plus settled orders); net profit is cash in
// hand after expenses.
type ReportSummary struct {
	TotalRevenue   float64     `json:"total_revenue"`
	TotalCollected float64     `json:"total_collected"`
	TotalPending   float64     `json:"total_pending"`
	TotalExpenses  float64     `json:"total_expenses"`
	NetProfit      float64     `json:"net_profit"`
	OrderCount     int         `json:"order_count"`
	CustomerCount  int         `json:"customer_count"`
	PendingOrders  []OrderView `json:"pending_orders"`
}

type ReportService interface {
	Summary(profileID uuid.UUID) (*ReportSummary, error)
}

type reportService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	expenseRepo  repository.ExpenseRepository
}

func NewReportService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{orderRepo: orderRepo, customerRepo: customerRepo, expenseRepo: expenseRepo}
}

func (s *reportService) Summary(profileID uuid.UUID) (*ReportSummary, error) {
	orders, err := s.orderRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAll(profileID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	summary := &ReportSummary{
		OrderCount:    len(orders),
		CustomerCount: len(customers),
		PendingOrders: []OrderView{},
	}
	for _, o := range orders {
		summary.TotalRevenue += o.TotalAmount
		due := o.BalanceDue()
		summary.TotalPending += due
		if due > 0 {
			view := OrderView{Order: o}
			if c, ok := byID[o.CustomerID]; ok {
				view.CustomerName = c.Name
				view.CustomerMobile = c.Mobile
			}
			summary.PendingOrders = append(summary.PendingOrders, view)
		}
	}
	summary.TotalCollected = summary.TotalRevenue - summary.TotalPending
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
	}
	summary.NetProfit = summary.TotalCollected - summary.TotalExpenses
	return summary, nil
}
