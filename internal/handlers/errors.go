package handlers

import (
	"errors"
	"net/http"

	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP surface. Unrecognized
// errors become a generic 500 so internals never leak to the operator.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var settleErr *services.SettlementRequiredError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &settleErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":       settleErr.Error(),
			"balance_due": settleErr.BalanceDue,
		})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidPIN),
		errors.Is(err, services.ErrResetTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCustomerRequired), errors.Is(err, services.ErrNoItemsSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrLocked):
		c.JSON(http.StatusLocked, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
