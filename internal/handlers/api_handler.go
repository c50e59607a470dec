package handlers

import (
	"io"
	"net/http"

	"tailor_shop/internal/middleware"
	"tailor_shop/internal/models"
	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIHandler serves the remaining shop screens: customers, expenses, the
// design catalog, reports, settings, and the notification poll.
type APIHandler struct {
	customerService     services.CustomerService
	expenseService      services.ExpenseService
	designService       services.DesignService
	reportService       services.ReportService
	settingsService     services.SettingsService
	notificationService services.NotificationService
}

func NewAPIHandler(
	customerService services.CustomerService,
	expenseService services.ExpenseService,
	designService services.DesignService,
	reportService services.ReportService,
	settingsService services.SettingsService,
	notificationService services.NotificationService,
) *APIHandler {
	return &APIHandler{
		customerService:     customerService,
		expenseService:      expenseService,
		designService:       designService,
		reportService:       reportService,
		settingsService:     settingsService,
		notificationService: notificationService,
	}
}

// Customers

func (h *APIHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.List(middleware.ProfileID(c), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *APIHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	customer, err := h.customerService.Get(middleware.ProfileID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

type customerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *APIHandler) SaveCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer := &models.Customer{
		ProfileID: middleware.ProfileID(c),
		Name:      req.Name,
		Mobile:    req.Mobile,
		Address:   req.Address,
		Notes:     req.Notes,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
			return
		}
		customer.ID = id
	}

	saved, err := h.customerService.Save(customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": saved})
}

func (h *APIHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	profileID := middleware.ProfileID(c)
	if err := h.customerService.Delete(profileID, id); err != nil {
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Customer deleted", services.NotifyInfo)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *APIHandler) GetCustomerMeasurements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	measurements, err := h.customerService.GetMeasurements(middleware.ProfileID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurements": measurements})
}

// Expenses

func (h *APIHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.List(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

type expenseRequest struct {
	ID       string  `json:"id"`
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

func (h *APIHandler) SaveExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	expense := &models.Expense{
		ProfileID: middleware.ProfileID(c),
		Category:  req.Category,
		Amount:    req.Amount,
		Note:      req.Note,
		Date:      req.Date,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense id"})
			return
		}
		expense.ID = id
	}

	saved, err := h.expenseService.Save(expense)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": saved})
}

func (h *APIHandler) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err := h.expenseService.Delete(middleware.ProfileID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Designs

func (h *APIHandler) ListDesigns(c *gin.Context) {
	designs, err := h.designService.List(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"designs": designs})
}

func (h *APIHandler) UploadDesign(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Design image is required"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}

	design, err := h.designService.Upload(
		middleware.ProfileID(c),
		c.PostForm("title"),
		c.PostForm("category"),
		header.Filename,
		data,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"design": design})
}

func (h *APIHandler) DeleteDesign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err := h.designService.Delete(middleware.ProfileID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Reports

func (h *APIHandler) ReportSummary(c *gin.Context) {
	summary, err := h.reportService.Summary(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Settings

func (h *APIHandler) GetConfig(c *gin.Context) {
	config, err := h.settingsService.GetConfig(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

type configRequest struct {
	ShopName *string `json:"shop_name"`
	Mobile   *string `json:"mobile"`
	Address  *string `json:"address"`
	GSTIn    *string `json:"gst_in"`
	PIN      *string `json:"pin"`
	LogoURL  *string `json:"logo_url"`
}

func (h *APIHandler) UpdateConfig(c *gin.Context) {
	var req configRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profileID := middleware.ProfileID(c)
	config, err := h.settingsService.UpdateConfig(profileID, services.ConfigUpdate{
		ShopName: req.ShopName,
		Mobile:   req.Mobile,
		Address:  req.Address,
		GSTIn:    req.GSTIn,
		PIN:      req.PIN,
		LogoURL:  req.LogoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Settings saved", services.NotifySuccess)
	c.JSON(http.StatusOK, config)
}

func (h *APIHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo image is required"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}

	url, err := h.settingsService.UploadLogo(middleware.ProfileID(c), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"logo_url": url})
}

// Notifications

func (h *APIHandler) DrainNotifications(c *gin.Context) {
	notifications, err := h.notificationService.Drain(middleware.ProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
