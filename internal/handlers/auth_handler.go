package handlers

import (
	"net/http"
	"strings"

	"tailor_shop/internal/middleware"
	"tailor_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService    services.AuthService
	sessionService services.SessionService
}

func NewAuthHandler(authService services.AuthService, sessionService services.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessionService: sessionService}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	ShopName string `json:"shop_name" binding:"required"`
	Mobile   string `json:"mobile"`
	PIN      string `json:"pin" binding:"required"`
	LogoURL  string `json:"logo_url"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, token, err := h.authService.SignUp(services.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		ShopName: req.ShopName,
		Mobile:   req.Mobile,
		PIN:      req.PIN,
		LogoURL:  req.LogoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// A fresh signup starts locked: the PIN screen follows login.
	c.JSON(http.StatusCreated, gin.H{"token": token, "profile": profile})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, token, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

// Session resolves the current token to its profile view. Any failure reads
// as no session.
func (h *AuthHandler) Session(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		c.JSON(http.StatusOK, gin.H{"profile": nil, "unlocked": false})
		return
	}
	profile, err := h.authService.GetSession(parts[1])
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil, "unlocked": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"unlocked": h.sessionService.IsUnlocked(profile.ID),
	})
}

type unlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}

func (h *AuthHandler) Unlock(c *gin.Context) {
	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.sessionService.Unlock(middleware.ProfileID(c), req.PIN); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unlocked"})
}

func (h *AuthHandler) Lock(c *gin.Context) {
	if err := h.sessionService.Lock(middleware.ProfileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "locked"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clearing the unlock state is the server side of
	// sign-out.
	h.sessionService.Lock(middleware.ProfileID(c))
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

type resetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.authService.ResetPassword(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset_requested"})
}

type updatePasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.authService.UpdatePassword(req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password_updated"})
}
