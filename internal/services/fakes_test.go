package services

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory doubles for the repository and store interfaces. They mirror the
// contract details the services rely on: gorm.ErrRecordNotFound for misses,
// newest-first ordering on list calls.

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*models.Profile)}
}

func (r *fakeProfileRepo) Create(p *models.Profile) error {
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByID(id uuid.UUID) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) Update(p *models.Profile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
}

func (r *fakeCustomerRepo) Save(c *models.Customer) error {
	cp := *c
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(profileID, id uuid.UUID) (*models.Customer, error) {
	if c, ok := r.customers[id]; ok && c.ProfileID == profileID {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetAll(profileID uuid.UUID) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range r.customers {
		if c.ProfileID == profileID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCustomerRepo) FindByMobile(profileID uuid.UUID, mobile string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.ProfileID == profileID && c.Mobile == mobile {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) Delete(profileID, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeMeasurementRepo struct {
	measurements map[string]*models.Measurement // customerID + garment
	upsertErr    error
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{measurements: make(map[string]*models.Measurement)}
}

func measurementKey(customerID uuid.UUID, garment models.GarmentType) string {
	return customerID.String() + "/" + string(garment)
}

func (r *fakeMeasurementRepo) GetForCustomer(profileID, customerID uuid.UUID) ([]models.Measurement, error) {
	var out []models.Measurement
	for _, m := range r.measurements {
		if m.ProfileID == profileID && m.CustomerID == customerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMeasurementRepo) Upsert(m *models.Measurement) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	key := measurementKey(m.CustomerID, m.GarmentType)
	if existing, ok := r.measurements[key]; ok {
		existing.Values = m.Values
		existing.Notes = m.Notes
		existing.UpdatedAt = m.UpdatedAt
		return nil
	}
	cp := *m
	r.measurements[key] = &cp
	return nil
}

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*models.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (r *fakeOrderRepo) Create(o *models.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(profileID, id uuid.UUID) (*models.Order, error) {
	if o, ok := r.orders[id]; ok && o.ProfileID == profileID {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetAll(profileID uuid.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.ProfileID == profileID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(profileID, id uuid.UUID, status models.OrderStatus, advanceAmount *float64) error {
	o, ok := r.orders[id]
	if !ok || o.ProfileID != profileID {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	if advanceAmount != nil {
		o.AdvanceAmount = *advanceAmount
	}
	return nil
}

func (r *fakeOrderRepo) Delete(profileID, id uuid.UUID) error {
	if o, ok := r.orders[id]; !ok || o.ProfileID != profileID {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (r *fakeExpenseRepo) Save(e *models.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetAll(profileID uuid.UUID) ([]models.Expense, error) {
	var out []models.Expense
	for _, e := range r.expenses {
		if e.ProfileID == profileID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeExpenseRepo) Delete(profileID, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

type fakeDesignRepo struct {
	designs map[uuid.UUID]*models.Design
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: make(map[uuid.UUID]*models.Design)}
}

func (r *fakeDesignRepo) Create(d *models.Design) error {
	cp := *d
	r.designs[d.ID] = &cp
	return nil
}

func (r *fakeDesignRepo) GetAll(profileID uuid.UUID) ([]models.Design, error) {
	var out []models.Design
	for _, d := range r.designs {
		if d.ProfileID == profileID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDesignRepo) Delete(profileID, id uuid.UUID) error {
	delete(r.designs, id)
	return nil
}

// fakeDraftStore keeps wizard drafts as serialized JSON like redis does, so
// type round-tripping is exercised too.
type fakeDraftStore struct {
	drafts map[string][]byte
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string][]byte)}
}

func (s *fakeDraftStore) SetWizardDraft(profileID string, draft interface{}, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.drafts[profileID] = data
	return nil
}

func (s *fakeDraftStore) GetWizardDraft(profileID string, dest interface{}) error {
	data, ok := s.drafts[profileID]
	if !ok {
		return errors.New("draft not found")
	}
	return json.Unmarshal(data, dest)
}

func (s *fakeDraftStore) DeleteWizardDraft(profileID string) error {
	delete(s.drafts, profileID)
	return nil
}

// fakeUnlockStore models TTL expiry against an adjustable clock.
type fakeUnlockStore struct {
	now     time.Time
	expires map[string]time.Time
	err     error
}

func newFakeUnlockStore() *fakeUnlockStore {
	return &fakeUnlockStore{now: time.Now(), expires: make(map[string]time.Time)}
}

func (s *fakeUnlockStore) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *fakeUnlockStore) SetUnlocked(profileID string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.expires[profileID] = s.now.Add(ttl)
	return nil
}

func (s *fakeUnlockStore) IsUnlocked(profileID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	exp, ok := s.expires[profileID]
	if !ok || !s.now.Before(exp) {
		return false, nil
	}
	return true, nil
}

func (s *fakeUnlockStore) RefreshUnlock(profileID string, ttl time.Duration) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	exp, ok := s.expires[profileID]
	if !ok || !s.now.Before(exp) {
		return false, nil
	}
	s.expires[profileID] = s.now.Add(ttl)
	return true, nil
}

func (s *fakeUnlockStore) ClearUnlock(profileID string) error {
	delete(s.expires, profileID)
	return nil
}

// fakeFileStore implements storage.Store in memory.
type fakeFileStore struct {
	files     map[string][]byte
	uploadErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string][]byte)}
}

func (s *fakeFileStore) Upload(path string, data []byte) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.files[path] = data
	return nil
}

func (s *fakeFileStore) Find(prefix, filename string) (string, bool, error) {
	path := prefix + "/" + filename
	if _, ok := s.files[path]; ok {
		return path, true, nil
	}
	return "", false, nil
}

func (s *fakeFileStore) PublicURL(path string) string {
	return "https://files.example.com/" + path
}

type fakeNotificationStore struct {
	queues map[string][]string
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{queues: make(map[string][]string)}
}

func (s *fakeNotificationStore) PushNotification(profileID string, payload interface{}, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.queues[profileID] = append(s.queues[profileID], string(data))
	return nil
}

func (s *fakeNotificationStore) DrainNotifications(profileID string) ([]string, error) {
	items := s.queues[profileID]
	delete(s.queues, profileID)
	return items, nil
}

type fakeResetStore struct {
	tokens map[string]string
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{tokens: make(map[string]string)}
}

func (s *fakeResetStore) SetResetToken(token, profileID string, ttl time.Duration) error {
	s.tokens[token] = profileID
	return nil
}

func (s *fakeResetStore) ConsumeResetToken(token string) (string, error) {
	profileID, ok := s.tokens[token]
	if !ok {
		return "", errors.New("token not found")
	}
	delete(s.tokens, token)
	return profileID, nil
}
