package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Claims is the JWT payload carried by authenticated requests.
type Claims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type SignUpInput struct {
	Email    string
	Password string
	ShopName string
	Mobile   string
	PIN      string
	LogoURL  string
}

// ResetTokenStore holds short-lived, single-use password reset tokens.
type ResetTokenStore interface {
	SetResetToken(token, profileID string, ttl time.Duration) error
	ConsumeResetToken(token string) (string, error)
}

type AuthService interface {
	SignUp(input SignUpInput) (*models.Profile, string, error)
	SignIn(email, password string) (*models.Profile, string, error)
	GetSession(tokenString string) (*models.Profile, error)
	ValidateToken(tokenString string) (*Claims, error)
	ResetPassword(email string) error
	UpdatePassword(resetToken, newPassword string) error
	ChangePassword(profileID uuid.UUID, newPassword string) error
}

type authService struct {
	profileRepo repository.ProfileRepository
	resetStore  ResetTokenStore
	jwtSecret   []byte
	tokenTTL    time.Duration
	resetTTL    time.Duration
}

func NewAuthService(profileRepo repository.ProfileRepository, resetStore ResetTokenStore, jwtSecret string, tokenTTL, resetTTL time.Duration) AuthService {
	return &authService{
		profileRepo: profileRepo,
		resetStore:  resetStore,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		resetTTL:    resetTTL,
	}
}

func (s *authService) SignUp(input SignUpInput) (*models.Profile, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, "", validationf("enter a valid email address")
	}
	if len(input.Password) < 6 {
		return nil, "", validationf("password must be at least 6 characters")
	}
	if strings.TrimSpace(input.ShopName) == "" {
		return nil, "", validationf("shop name is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return nil, "", validationf("pin must be exactly 4 digits")
	}

	if _, err := s.profileRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := &models.Profile{
		ID:           uuid.New(),
		ShopName:     strings.TrimSpace(input.ShopName),
		Email:        email,
		Mobile:       strings.TrimSpace(input.Mobile),
		LogoURL:      input.LogoURL,
		PIN:          input.PIN,
		PasswordHash: string(hash),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *authService) SignIn(email, password string) (*models.Profile, string, error) {
	profile, err := s.profileRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(profile)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// GetSession resolves a token to its profile. Any failure is treated as no
// session at all.
func (s *authService) GetSession(tokenString string) (*models.Profile, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrNotFound
	}
	id, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return nil, ErrNotFound
	}
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// ResetPassword issues a single-use token. There is no mailer; the reset
// link is logged for out-of-band delivery. Unknown emails are not revealed.
func (s *authService) ResetPassword(email string) error {
	profile, err := s.profileRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	token := uuid.NewString()
	if err := s.resetStore.SetResetToken(token, profile.ID.String(), s.resetTTL); err != nil {
		return err
	}
	log.Printf("Password reset requested for %s: /reset-password?token=%s", profile.Email, token)
	return nil
}

func (s *authService) UpdatePassword(resetToken, newPassword string) error {
	if len(newPassword) < 6 {
		return validationf("password must be at least 6 characters")
	}
	profileID, err := s.resetStore.ConsumeResetToken(resetToken)
	if err != nil {
		return ErrResetTokenInvalid
	}
	id, err := uuid.Parse(profileID)
	if err != nil {
		return ErrResetTokenInvalid
	}
	return s.ChangePassword(id, newPassword)
}

func (s *authService) ChangePassword(profileID uuid.UUID, newPassword string) error {
	if len(newPassword) < 6 {
		return validationf("password must be at least 6 characters")
	}
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile.PasswordHash = string(hash)
	return s.profileRepo.Update(profile)
}

func (s *authService) issueToken(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := &Claims{
		ProfileID: profile.ID.String(),
		Email:     profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
