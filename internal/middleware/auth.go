package middleware

import (
	"net/http"
	"strings"

	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const profileIDKey = "profile_id"

// Authenticate validates the bearer token and stashes the profile id in the
// request context. Missing or invalid tokens fail closed with 401.
func Authenticate(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		profileID, err := uuid.Parse(claims.ProfileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(profileIDKey, profileID)
		c.Next()
	}
}

// RequireUnlocked gates the shop screens behind the PIN. Every request that
// passes counts as activity and resets the idle countdown; a locked or
// expired session answers 423 until the operator unlocks again.
func RequireUnlocked(sessionService services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := ProfileID(c)
		if !sessionService.IsUnlocked(profileID) {
			c.AbortWithStatusJSON(http.StatusLocked, gin.H{"error": "Session locked. Enter your PIN to continue."})
			return
		}
		sessionService.Touch(profileID)
		c.Next()
	}
}

// ProfileID returns the authenticated profile id set by Authenticate.
func ProfileID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(profileIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
