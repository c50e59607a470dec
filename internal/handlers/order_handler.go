package handlers

import (
	"net/http"

	"tailor_shop/internal/middleware"
	"tailor_shop/internal/models"
	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService        services.OrderService
	invoiceService      services.InvoiceService
	notificationService services.NotificationService
}

func NewOrderHandler(orderService services.OrderService, invoiceService services.InvoiceService, notificationService services.NotificationService) *OrderHandler {
	return &OrderHandler{
		orderService:        orderService,
		invoiceService:      invoiceService,
		notificationService: notificationService,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	filter := services.OrderFilter(c.DefaultQuery("filter", string(services.FilterAll)))
	switch filter {
	case services.FilterAll, services.FilterPending, services.FilterDelivered:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be ALL, PENDING or DELIVERED"})
		return
	}

	orders, err := h.orderService.List(middleware.ProfileID(c), filter, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	order, err := h.orderService.Get(middleware.ProfileID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "balance_due": order.BalanceDue()})
}

type updateStatusRequest struct {
	Status        models.OrderStatus `json:"status" binding:"required"`
	ConfirmSettle bool               `json:"confirm_settle"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profileID := middleware.ProfileID(c)
	if err := h.orderService.UpdateStatus(profileID, id, req.Status, req.ConfirmSettle); err != nil {
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Order marked as "+string(req.Status), services.NotifySuccess)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	profileID := middleware.ProfileID(c)
	if err := h.orderService.Delete(profileID, id); err != nil {
		respondError(c, err)
		return
	}
	h.notificationService.Enqueue(profileID, "Order deleted successfully", services.NotifyInfo)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Share finds or generates the order's invoice document and returns the
// pre-filled WhatsApp link.
func (h *OrderHandler) Share(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	profileID := middleware.ProfileID(c)
	result, err := h.invoiceService.Share(profileID, id)
	if err != nil {
		h.notificationService.Enqueue(profileID, "Could not generate invoice. Please try again.", services.NotifyError)
		respondError(c, err)
		return
	}

	switch {
	case result.Reused:
		h.notificationService.Enqueue(profileID, "Invoice found, opening WhatsApp...", services.NotifySuccess)
	case result.Fallback:
		h.notificationService.Enqueue(profileID, "Cloud upload failed. Downloading file instead.", services.NotifyInfo)
	default:
		h.notificationService.Enqueue(profileID, "Invoice ready, opening WhatsApp...", services.NotifySuccess)
	}
	c.JSON(http.StatusOK, result)
}
