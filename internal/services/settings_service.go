package services

import (
	"fmt"
	"strings"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"
	"tailor_shop/internal/storage"

	"github.com/google/uuid"
)

// ConfigUpdate carries the settings-screen fields; nil means unchanged.
type ConfigUpdate struct {
	ShopName *string
	Mobile   *string
	Address  *string
	GSTIn    *string
	PIN      *string
	LogoURL  *string
}

type SettingsService interface {
	GetConfig(profileID uuid.UUID) (*models.AppConfig, error)
	UpdateConfig(profileID uuid.UUID, update ConfigUpdate) (*models.AppConfig, error)
	UploadLogo(profileID uuid.UUID, fileName string, data []byte) (string, error)
}

type settingsService struct {
	profileRepo repository.ProfileRepository
	store       storage.Store
}

func NewSettingsService(profileRepo repository.ProfileRepository, store storage.Store) SettingsService {
	return &settingsService{profileRepo: profileRepo, store: store}
}

func (s *settingsService) GetConfig(profileID uuid.UUID) (*models.AppConfig, error) {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	return &models.AppConfig{ShopName: profile.ShopName, PIN: profile.PIN, LogoURL: profile.LogoURL}, nil
}

func (s *settingsService) UpdateConfig(profileID uuid.UUID, update ConfigUpdate) (*models.AppConfig, error) {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if update.ShopName != nil {
		name := strings.TrimSpace(*update.ShopName)
		if name == "" {
			return nil, validationf("shop name cannot be empty")
		}
		profile.ShopName = name
	}
	if update.PIN != nil {
		if !pinPattern.MatchString(*update.PIN) {
			return nil, validationf("pin must be exactly 4 digits")
		}
		profile.PIN = *update.PIN
	}
	if update.Mobile != nil {
		profile.Mobile = strings.TrimSpace(*update.Mobile)
	}
	if update.Address != nil {
		profile.Address = strings.TrimSpace(*update.Address)
	}
	if update.GSTIn != nil {
		profile.GSTIn = strings.TrimSpace(*update.GSTIn)
	}
	if update.LogoURL != nil {
		profile.LogoURL = *update.LogoURL
	}
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return &models.AppConfig{ShopName: profile.ShopName, PIN: profile.PIN, LogoURL: profile.LogoURL}, nil
}

func (s *settingsService) UploadLogo(profileID uuid.UUID, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", validationf("logo image is required")
	}
	ext := "png"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = strings.ToLower(fileName[i+1:])
	}
	path := fmt.Sprintf("logos/%s/%d.%s", profileID, time.Now().UnixMilli(), ext)
	if err := s.store.Upload(path, data); err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}
	return s.store.PublicURL(path), nil
}
