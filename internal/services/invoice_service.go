package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"
	"tailor_shop/internal/storage"
	"tailor_shop/pkg/whatsapp"

	"github.com/google/uuid"
)

// ShareResult is what the invoice screen needs to hand the operator off to
// the messaging app. Fallback is set when the document could not be hosted
// and was delivered to the device instead; the deep link then carries a
// text-only message.
type ShareResult struct {
	WhatsAppURL string `json:"whatsapp_url"`
	DocumentURL string `json:"document_url,omitempty"`
	Reused      bool   `json:"reused"`
	Fallback    bool   `json:"fallback"`
	FileName    string `json:"file_name,omitempty"`
}

type InvoiceData struct {
	Profile      *models.Profile
	Customer     *models.Customer
	Order        *models.Order
	Measurements []models.Measurement
}

type InvoiceService interface {
	Share(profileID, orderID uuid.UUID) (*ShareResult, error)
}

type invoiceService struct {
	orderRepo       repository.OrderRepository
	customerRepo    repository.CustomerRepository
	measurementRepo repository.MeasurementRepository
	profileRepo     repository.ProfileRepository
	store           storage.Store
	links           *whatsapp.LinkBuilder
	downloadDir     string
	render          func(*InvoiceData) ([]byte, error)
}

func NewInvoiceService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	measurementRepo repository.MeasurementRepository,
	profileRepo repository.ProfileRepository,
	store storage.Store,
	links *whatsapp.LinkBuilder,
	downloadDir string,
) InvoiceService {
	return &invoiceService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		measurementRepo: measurementRepo,
		profileRepo:     profileRepo,
		store:           store,
		links:           links,
		downloadDir:     downloadDir,
		render:          renderInvoicePDF,
	}
}

// InvoicePrefix and InvoiceFile form the deterministic storage path for an
// order's invoice; the pair doubles as the idempotency cache key, so sharing
// the same order twice on a day reuses the first document.
func InvoicePrefix(order *models.Order) string {
	return "invoices/" + order.CreatedAt.Format("2006-01-02")
}

func InvoiceFile(order *models.Order) string {
	return order.ID.String() + ".pdf"
}

func (s *invoiceService) Share(profileID, orderID uuid.UUID) (*ShareResult, error) {
	order, err := s.orderRepo.GetByID(profileID, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	customer, err := s.customerRepo.GetByID(profileID, order.CustomerID)
	if err != nil {
		return nil, ErrNotFound
	}
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	// Lookup before generate.
	if path, found, err := s.store.Find(InvoicePrefix(order), InvoiceFile(order)); err == nil && found {
		publicURL := s.store.PublicURL(path)
		message := whatsapp.InvoiceMessage(profile.ShopName, customer.Name, order.Ref(), order.BalanceDue(), publicURL)
		return &ShareResult{
			WhatsAppURL: s.links.Link(customer.Mobile, message),
			DocumentURL: publicURL,
			Reused:      true,
		}, nil
	}

	measurements, err := s.measurementRepo.GetForCustomer(profileID, order.CustomerID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.render(&InvoiceData{
		Profile:      profile,
		Customer:     customer,
		Order:        order,
		Measurements: measurements,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	path := InvoicePrefix(order) + "/" + InvoiceFile(order)
	if err := s.store.Upload(path, pdfBytes); err != nil {
		// Hosting failed: deliver the document locally and share a
		// text-only message the operator attaches the file to.
		fileName, saveErr := s.saveLocal(order, customer, pdfBytes)
		if saveErr != nil {
			return nil, fmt.Errorf("invoice upload failed (%v) and local save failed: %w", err, saveErr)
		}
		message := whatsapp.FallbackMessage(profile.ShopName, customer.Name, order.Ref())
		return &ShareResult{
			WhatsAppURL: s.links.Link(customer.Mobile, message),
			Fallback:    true,
			FileName:    fileName,
		}, nil
	}

	publicURL := s.store.PublicURL(path)
	message := whatsapp.InvoiceMessage(profile.ShopName, customer.Name, order.Ref(), order.BalanceDue(), publicURL)
	return &ShareResult{
		WhatsAppURL: s.links.Link(customer.Mobile, message),
		DocumentURL: publicURL,
	}, nil
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9]`)

func (s *invoiceService) saveLocal(order *models.Order, customer *models.Customer, data []byte) (string, error) {
	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("Invoice_%s_%s.pdf", order.Ref(), unsafeName.ReplaceAllString(customer.Name, "_"))
	if err := os.WriteFile(filepath.Join(s.downloadDir, fileName), data, 0o644); err != nil {
		return "", err
	}
	return fileName, nil
}
