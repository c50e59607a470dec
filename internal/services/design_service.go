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

type DesignService interface {
	List(profileID uuid.UUID) ([]models.Design, error)
	Upload(profileID uuid.UUID, title, category, fileName string, data []byte) (*models.Design, error)
	Delete(profileID, id uuid.UUID) error
}

type designService struct {
	designRepo repository.DesignRepository
	store      storage.Store
}

func NewDesignService(designRepo repository.DesignRepository, store storage.Store) DesignService {
	return &designService{designRepo: designRepo, store: store}
}

func (s *designService) List(profileID uuid.UUID) ([]models.Design, error) {
	return s.designRepo.GetAll(profileID)
}

// Upload stores the catalog image first, then the metadata row pointing at
// its public URL.
func (s *designService) Upload(profileID uuid.UUID, title, category, fileName string, data []byte) (*models.Design, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationf("design title is required")
	}
	if len(data) == 0 {
		return nil, validationf("design image is required")
	}

	ext := "jpg"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = strings.ToLower(fileName[i+1:])
	}
	path := fmt.Sprintf("designs/%s/%d.%s", profileID, time.Now().UnixMilli(), ext)
	if err := s.store.Upload(path, data); err != nil {
		return nil, fmt.Errorf("failed to upload design image: %w", err)
	}

	design := &models.Design{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     title,
		Category:  strings.TrimSpace(category),
		ImageURL:  s.store.PublicURL(path),
		CreatedAt: time.Now(),
	}
	if err := s.designRepo.Create(design); err != nil {
		return nil, err
	}
	return design, nil
}

// Delete removes the catalog row only; the stored image is left in place.
func (s *designService) Delete(profileID, id uuid.UUID) error {
	return s.designRepo.Delete(profileID, id)
}
