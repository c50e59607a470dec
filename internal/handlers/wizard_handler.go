package handlers

import (
	"net/http"

	"tailor_shop/internal/middleware"
	"tailor_shop/internal/models"
	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	wizardService       services.WizardService
	notificationService services.NotificationService
}

func NewWizardHandler(wizardService services.WizardService, notificationService services.NotificationService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService, notificationService: notificationService}
}

func (h *WizardHandler) Start(c *gin.Context) {
	draft, err := h.wizardService.Start(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) Get(c *gin.Context) {
	draft, err := h.wizardService.Get(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "balance_due": draft.BalanceDue()})
}

type lookupRequest struct {
	Mobile string `json:"mobile"`
}

func (h *WizardHandler) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profileID := middleware.ProfileID(c)
	result, err := h.wizardService.Lookup(profileID, req.Mobile)
	if err != nil {
		respondError(c, err)
		return
	}
	switch result.Status {
	case services.LookupFound:
		h.notificationService.Enqueue(profileID, "Customer Found: "+result.Customer.Name, services.NotifySuccess)
	case services.LookupNew:
		h.notificationService.Enqueue(profileID, "New customer detected", services.NotifyInfo)
	}
	c.JSON(http.StatusOK, result)
}

type newCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func (h *WizardHandler) CreateCustomer(c *gin.Context) {
	var req newCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profileID := middleware.ProfileID(c)
	customer, err := h.wizardService.CreateCustomer(profileID, req.Name, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Customer saved successfully!", services.NotifySuccess)
	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

type measurementsRequest struct {
	GarmentType models.GarmentType `json:"garment_type" binding:"required"`
	Values      models.ValueMap    `json:"values"`
}

func (h *WizardHandler) SetMeasurements(c *gin.Context) {
	var req measurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	draft, err := h.wizardService.SetMeasurements(middleware.ProfileID(c), req.GarmentType, req.Values)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

type activeTabRequest struct {
	GarmentType models.GarmentType `json:"garment_type" binding:"required"`
}

func (h *WizardHandler) SetActiveTab(c *gin.Context) {
	var req activeTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	draft, err := h.wizardService.SetActiveTab(middleware.ProfileID(c), req.GarmentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

type detailsRequest struct {
	SelectedItems []models.GarmentType `json:"selected_items"`
	DeliveryDate  string               `json:"delivery_date"`
	TotalAmount   *float64             `json:"total_amount"`
	AdvanceAmount float64              `json:"advance_amount"`
}

func (h *WizardHandler) SetDetails(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	draft, err := h.wizardService.SetDetails(middleware.ProfileID(c), req.SelectedItems, req.DeliveryDate, req.TotalAmount, req.AdvanceAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "balance_due": draft.BalanceDue()})
}

func (h *WizardHandler) Commit(c *gin.Context) {
	profileID := middleware.ProfileID(c)
	order, err := h.wizardService.Commit(profileID)
	if err != nil {
		h.notificationService.Enqueue(profileID, "Failed to save order. Please check your connection.", services.NotifyError)
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Order created successfully!", services.NotifySuccess)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *WizardHandler) Abandon(c *gin.Context) {
	if err := h.wizardService.Abandon(middleware.ProfileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}
