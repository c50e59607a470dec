package services

import (
	"time"

	"tailor_shop/internal/repository"

	"github.com/google/uuid"
)

// UnlockStore tracks which profiles are PIN-unlocked. An entry's TTL is the
// idle window; expiry is the auto-lock.
type UnlockStore interface {
	SetUnlocked(profileID string, ttl time.Duration) error
	IsUnlocked(profileID string) (bool, error)
	RefreshUnlock(profileID string, ttl time.Duration) (bool, error)
	ClearUnlock(profileID string) error
}

// SessionService is the PIN gate between an authenticated session and the
// shop screens. A profile moves Locked -> Unlocked only through Unlock with
// the exact configured PIN, and back to Locked explicitly via Lock or by
// the idle TTL running out.
type SessionService interface {
	Unlock(profileID uuid.UUID, code string) error
	Lock(profileID uuid.UUID) error
	IsUnlocked(profileID uuid.UUID) bool
	Touch(profileID uuid.UUID)
}

type sessionService struct {
	profileRepo repository.ProfileRepository
	store       UnlockStore
	idleTTL     time.Duration
}

func NewSessionService(profileRepo repository.ProfileRepository, store UnlockStore, idleTTL time.Duration) SessionService {
	return &sessionService{profileRepo: profileRepo, store: store, idleTTL: idleTTL}
}

func (s *sessionService) Unlock(profileID uuid.UUID, code string) error {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return err
	}
	if code == "" || code != profile.PIN {
		return ErrInvalidPIN
	}
	return s.store.SetUnlocked(profileID.String(), s.idleTTL)
}

func (s *sessionService) Lock(profileID uuid.UUID) error {
	return s.store.ClearUnlock(profileID.String())
}

// IsUnlocked fails closed: a store error reads as locked.
func (s *sessionService) IsUnlocked(profileID uuid.UUID) bool {
	unlocked, err := s.store.IsUnlocked(profileID.String())
	if err != nil {
		return false
	}
	return unlocked
}

// Touch resets the idle countdown. Called for every request to a protected
// route; public and unlock routes do not touch the timer.
func (s *sessionService) Touch(profileID uuid.UUID) {
	s.store.RefreshUnlock(profileID.String(), s.idleTTL)
}
