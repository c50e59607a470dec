package services

import (
	"strings"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/google/uuid"
)

// DraftStore holds the one in-flight order intake per profile.
type DraftStore interface {
	SetWizardDraft(profileID string, draft interface{}, ttl time.Duration) error
	GetWizardDraft(profileID string, dest interface{}) error
	DeleteWizardDraft(profileID string) error
}

// WizardDraft is the three-step intake state. Measurement edits live here
// until commit; nothing is persisted before then except a newly created
// customer.
type WizardDraft struct {
	Step          int                                     `json:"step"`
	CustomerID    uuid.UUID                               `json:"customer_id"`
	MobileSearch  string                                  `json:"mobile_search"`
	ActiveTab     models.GarmentType                      `json:"active_tab"`
	Measurements  map[models.GarmentType]models.ValueMap  `json:"measurements"`
	SelectedItems []models.GarmentType                    `json:"selected_items"`
	DeliveryDate  string                                  `json:"delivery_date"`
	TotalAmount   *float64                                `json:"total_amount"`
	AdvanceAmount float64                                 `json:"advance_amount"`
}

// BalanceDue is the live figure shown on step 3.
func (d *WizardDraft) BalanceDue() float64 {
	if d.TotalAmount == nil {
		return 0
	}
	if bal := *d.TotalAmount - d.AdvanceAmount; bal > 0 {
		return bal
	}
	return 0
}

type LookupStatus string

const (
	LookupIdle  LookupStatus = "idle"
	LookupFound LookupStatus = "found"
	LookupNew   LookupStatus = "new"
)

type LookupResult struct {
	Status   LookupStatus     `json:"status"`
	Customer *models.Customer `json:"customer,omitempty"`
}

const draftTTL = 2 * time.Hour

type WizardService interface {
	Start(profileID uuid.UUID) (*WizardDraft, error)
	Get(profileID uuid.UUID) (*WizardDraft, error)
	Lookup(profileID uuid.UUID, mobile string) (*LookupResult, error)
	CreateCustomer(profileID uuid.UUID, name, address string) (*models.Customer, error)
	SetMeasurements(profileID uuid.UUID, garment models.GarmentType, values models.ValueMap) (*WizardDraft, error)
	SetActiveTab(profileID uuid.UUID, garment models.GarmentType) (*WizardDraft, error)
	SetDetails(profileID uuid.UUID, selected []models.GarmentType, deliveryDate string, total *float64, advance float64) (*WizardDraft, error)
	Commit(profileID uuid.UUID) (*models.Order, error)
	Abandon(profileID uuid.UUID) error
}

type wizardService struct {
	drafts          DraftStore
	customerRepo    repository.CustomerRepository
	measurementRepo repository.MeasurementRepository
	orderRepo       repository.OrderRepository
}

func NewWizardService(drafts DraftStore, customerRepo repository.CustomerRepository, measurementRepo repository.MeasurementRepository, orderRepo repository.OrderRepository) WizardService {
	return &wizardService{
		drafts:          drafts,
		customerRepo:    customerRepo,
		measurementRepo: measurementRepo,
		orderRepo:       orderRepo,
	}
}

func (s *wizardService) Start(profileID uuid.UUID) (*WizardDraft, error) {
	draft := &WizardDraft{
		Step:         1,
		ActiveTab:    models.GarmentShirt,
		Measurements: emptyMeasurements(),
		DeliveryDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	}
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) Get(profileID uuid.UUID) (*WizardDraft, error) {
	var draft WizardDraft
	if err := s.drafts.GetWizardDraft(profileID.String(), &draft); err != nil {
		return nil, ErrNotFound
	}
	return &draft, nil
}

// Lookup resolves the customer from a mobile number. Anything shorter than
// ten digits leaves the step idle; at exactly ten digits the result is
// either the matching customer or an invitation to create one.
func (s *wizardService) Lookup(profileID uuid.UUID, mobile string) (*LookupResult, error) {
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	mobile = strings.TrimSpace(mobile)
	draft.MobileSearch = mobile
	draft.CustomerID = uuid.Nil

	if len(mobile) != 10 {
		if err := s.save(profileID, draft); err != nil {
			return nil, err
		}
		return &LookupResult{Status: LookupIdle}, nil
	}

	customer, err := s.customerRepo.FindByMobile(profileID, mobile)
	if err != nil {
		if err := s.save(profileID, draft); err != nil {
			return nil, err
		}
		return &LookupResult{Status: LookupNew}, nil
	}

	draft.CustomerID = customer.ID
	if err := s.loadMeasurements(profileID, draft); err != nil {
		return nil, err
	}
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return &LookupResult{Status: LookupFound, Customer: customer}, nil
}

// CreateCustomer persists the new customer entered on step 1 and attaches it
// to the draft. This is the one write the wizard makes before commit.
func (s *wizardService) CreateCustomer(profileID uuid.UUID, name, address string) (*models.Customer, error) {
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	if len(draft.MobileSearch) != 10 {
		return nil, validationf("enter a 10 digit mobile number first")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("customer name is required")
	}

	customer := &models.Customer{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      name,
		Mobile:    draft.MobileSearch,
		Address:   strings.TrimSpace(address),
		CreatedAt: time.Now(),
	}
	if err := s.customerRepo.Save(customer); err != nil {
		return nil, err
	}

	draft.CustomerID = customer.ID
	draft.Measurements = emptyMeasurements()
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *wizardService) SetMeasurements(profileID uuid.UUID, garment models.GarmentType, values models.ValueMap) (*WizardDraft, error) {
	if !garment.Valid() {
		return nil, validationf("unknown garment type %q", garment)
	}
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	if draft.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	draft.Step = 2
	draft.ActiveTab = garment
	draft.Measurements[garment] = values
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) SetActiveTab(profileID uuid.UUID, garment models.GarmentType) (*WizardDraft, error) {
	if !garment.Valid() {
		return nil, validationf("unknown garment type %q", garment)
	}
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	draft.ActiveTab = garment
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetDetails records the step 3 fields. With nothing selected yet the
// garment tab active at step entry becomes the default selection.
func (s *wizardService) SetDetails(profileID uuid.UUID, selected []models.GarmentType, deliveryDate string, total *float64, advance float64) (*WizardDraft, error) {
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	if draft.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	for _, g := range selected {
		if !g.Valid() {
			return nil, validationf("unknown garment type %q", g)
		}
	}
	if len(selected) == 0 {
		selected = []models.GarmentType{draft.ActiveTab}
	}
	if total != nil && *total < 0 {
		return nil, validationf("total amount cannot be negative")
	}
	if advance < 0 {
		return nil, validationf("advance amount cannot be negative")
	}

	draft.Step = 3
	draft.SelectedItems = selected
	if deliveryDate != "" {
		if _, err := time.Parse("2006-01-02", deliveryDate); err != nil {
			return nil, validationf("delivery date must be YYYY-MM-DD")
		}
		draft.DeliveryDate = deliveryDate
	}
	draft.TotalAmount = total
	draft.AdvanceAmount = advance
	if err := s.save(profileID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Commit upserts every garment draft that has values, then creates the
// order with one item per selected garment, the entered total split evenly
// across them. The order and its items are one transaction; the measurement
// writes are independent and overwrite-safe, so a failed commit can simply
// be retried.
func (s *wizardService) Commit(profileID uuid.UUID) (*models.Order, error) {
	draft, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}
	if draft.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	if len(draft.SelectedItems) == 0 {
		return nil, ErrNoItemsSelected
	}
	if draft.DeliveryDate == "" {
		return nil, validationf("delivery date is required")
	}
	if draft.TotalAmount == nil {
		return nil, validationf("total amount is required")
	}

	for _, garment := range models.AllGarmentTypes {
		values := draft.Measurements[garment]
		if !values.HasValues() {
			continue
		}
		m := &models.Measurement{
			ID:          uuid.New(),
			ProfileID:   profileID,
			CustomerID:  draft.CustomerID,
			GarmentType: garment,
			Values:      values,
			UpdatedAt:   time.Now(),
		}
		if err := s.measurementRepo.Upsert(m); err != nil {
			return nil, err
		}
	}

	order := &models.Order{
		ID:            uuid.New(),
		ProfileID:     profileID,
		CustomerID:    draft.CustomerID,
		Status:        models.StatusReceived,
		DeliveryDate:  draft.DeliveryDate,
		TotalAmount:   *draft.TotalAmount,
		AdvanceAmount: draft.AdvanceAmount,
		CreatedAt:     time.Now(),
	}
	perItem := *draft.TotalAmount / float64(len(draft.SelectedItems))
	for _, garment := range draft.SelectedItems {
		item := models.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			GarmentType: garment,
			Qty:         1,
			Price:       perItem,
		}
		if values := draft.Measurements[garment]; values.HasValues() {
			item.MeasurementSnapshot = values
		}
		order.Items = append(order.Items, item)
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Draft cleanup is best effort; the TTL covers a failed delete.
	s.drafts.DeleteWizardDraft(profileID.String())
	return order, nil
}

func (s *wizardService) Abandon(profileID uuid.UUID) error {
	return s.drafts.DeleteWizardDraft(profileID.String())
}

func (s *wizardService) loadMeasurements(profileID uuid.UUID, draft *WizardDraft) error {
	existing, err := s.measurementRepo.GetForCustomer(profileID, draft.CustomerID)
	if err != nil {
		return err
	}
	draft.Measurements = emptyMeasurements()
	for _, m := range existing {
		values := make(models.ValueMap, len(m.Values))
		for k, v := range m.Values {
			values[k] = v
		}
		draft.Measurements[m.GarmentType] = values
	}
	return nil
}

func (s *wizardService) save(profileID uuid.UUID, draft *WizardDraft) error {
	return s.drafts.SetWizardDraft(profileID.String(), draft, draftTTL)
}

func emptyMeasurements() map[models.GarmentType]models.ValueMap {
	m := make(map[models.GarmentType]models.ValueMap, len(models.AllGarmentTypes))
	for _, g := range models.AllGarmentTypes {
		m[g] = models.ValueMap{}
	}
	return m
}
