package services

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/pkg/whatsapp"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceFixture struct {
	svc         InvoiceService
	orders      *fakeOrderRepo
	customers   *fakeCustomerRepo
	profiles    *fakeProfileRepo
	store       *fakeFileStore
	profileID   uuid.UUID
	customerID  uuid.UUID
	orderID     uuid.UUID
	renderCalls int
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	f := &invoiceFixture{
		orders:     newFakeOrderRepo(),
		customers:  newFakeCustomerRepo(),
		profiles:   newFakeProfileRepo(),
		store:      newFakeFileStore(),
		profileID:  uuid.New(),
		customerID: uuid.New(),
		orderID:    uuid.New(),
	}

	require.NoError(t, f.profiles.Create(&models.Profile{
		ID: f.profileID, ShopName: "Patel Tailors", Email: "patel@example.com",
	}))
	require.NoError(t, f.customers.Save(&models.Customer{
		ID: f.customerID, ProfileID: f.profileID, Name: "Raj Kumar", Mobile: "9876543210",
	}))
	require.NoError(t, f.orders.Create(&models.Order{
		ID:            f.orderID,
		ProfileID:     f.profileID,
		CustomerID:    f.customerID,
		Status:        models.StatusCompleted,
		DeliveryDate:  "2025-01-10",
		TotalAmount:   1000,
		AdvanceAmount: 300,
		CreatedAt:     time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
	}))

	svc := NewInvoiceService(
		f.orders, f.customers, newFakeMeasurementRepo(), f.profiles,
		f.store, &whatsapp.LinkBuilder{CountryCode: "91"}, t.TempDir(),
	)
	svc.(*invoiceService).render = func(*InvoiceData) ([]byte, error) {
		f.renderCalls++
		return []byte("%PDF-1.4 stub"), nil
	}
	f.svc = svc
	return f
}

func TestShareGeneratesAndHostsInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	res, err := f.svc.Share(f.profileID, f.orderID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.renderCalls)
	assert.False(t, res.Reused)
	assert.False(t, res.Fallback)

	// Path is keyed by order creation date and id.
	wantPath := "invoices/2025-01-03/" + f.orderID.String() + ".pdf"
	assert.Contains(t, f.store.files, wantPath)
	assert.Equal(t, "https://files.example.com/"+wantPath, res.DocumentURL)

	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/919876543210?text="), res.WhatsAppURL)
}

func TestShareReusesExistingInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	first, err := f.svc.Share(f.profileID, f.orderID)
	require.NoError(t, err)
	second, err := f.svc.Share(f.profileID, f.orderID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.renderCalls, "second share must not re-render")
	assert.True(t, second.Reused)
	assert.Equal(t, first.DocumentURL, second.DocumentURL)
}

func TestShareMessageContents(t *testing.T) {
	f := newInvoiceFixture(t)

	res, err := f.svc.Share(f.profileID, f.orderID)
	require.NoError(t, err)

	order, err := f.orders.GetByID(f.profileID, f.orderID)
	require.NoError(t, err)

	decoded := decodeWAText(t, res.WhatsAppURL)
	assert.Contains(t, decoded, "*INVOICE: Patel Tailors*")
	assert.Contains(t, decoded, "Hello Raj Kumar,")
	assert.Contains(t, decoded, "#"+order.Ref())
	assert.Contains(t, decoded, "Amount Due: ₹700")
	assert.Contains(t, decoded, res.DocumentURL)
}

func TestShareFallsBackWhenUploadFails(t *testing.T) {
	f := newInvoiceFixture(t)
	f.store.uploadErr = assert.AnError
	downloadDir := f.svc.(*invoiceService).downloadDir

	res, err := f.svc.Share(f.profileID, f.orderID)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Empty(t, res.DocumentURL)
	assert.Equal(t, "Invoice_"+orderRef(t, f)+"_Raj_Kumar.pdf", res.FileName)

	data, err := os.ReadFile(filepath.Join(downloadDir, res.FileName))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 stub"), data)

	// Text-only message, no hosted link.
	decoded := decodeWAText(t, res.WhatsAppURL)
	assert.NotContains(t, decoded, "http")
	assert.Contains(t, decoded, "Patel Tailors")
}

func TestShareUnknownOrder(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.Share(f.profileID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func decodeWAText(t *testing.T, waURL string) string {
	t.Helper()
	u, err := url.Parse(waURL)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func orderRef(t *testing.T, f *invoiceFixture) string {
	t.Helper()
	order, err := f.orders.GetByID(f.profileID, f.orderID)
	require.NoError(t, err)
	return order.Ref()
}
