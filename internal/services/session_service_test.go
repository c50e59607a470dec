package services

import (
	"testing"
	"time"

	"tailor_shop/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, pin string) (SessionService, *fakeUnlockStore, uuid.UUID) {
	t.Helper()
	profiles := newFakeProfileRepo()
	profileID := uuid.New()
	require.NoError(t, profiles.Create(&models.Profile{ID: profileID, ShopName: "Test Shop", Email: "shop@example.com", PIN: pin}))
	store := newFakeUnlockStore()
	return NewSessionService(profiles, store, 5*time.Minute), store, profileID
}

func TestUnlockWithCorrectPIN(t *testing.T) {
	svc, _, profileID := newTestSession(t, "4321")

	assert.False(t, svc.IsUnlocked(profileID))
	require.NoError(t, svc.Unlock(profileID, "4321"))
	assert.True(t, svc.IsUnlocked(profileID))
}

func TestUnlockWithWrongPIN(t *testing.T) {
	svc, _, profileID := newTestSession(t, "4321")

	err := svc.Unlock(profileID, "1234")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	assert.False(t, svc.IsUnlocked(profileID))

	err = svc.Unlock(profileID, "")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	assert.False(t, svc.IsUnlocked(profileID))
}

func TestUnlockUnknownProfile(t *testing.T) {
	svc, _, _ := newTestSession(t, "4321")
	assert.Error(t, svc.Unlock(uuid.New(), "4321"))
}

func TestAutoLockAfterIdleWindow(t *testing.T) {
	svc, store, profileID := newTestSession(t, "4321")
	require.NoError(t, svc.Unlock(profileID, "4321"))

	store.advance(4 * time.Minute)
	assert.True(t, svc.IsUnlocked(profileID), "still inside the idle window")

	store.advance(2 * time.Minute)
	assert.False(t, svc.IsUnlocked(profileID), "idle window elapsed")
}

func TestTouchResetsIdleCountdown(t *testing.T) {
	svc, store, profileID := newTestSession(t, "4321")
	require.NoError(t, svc.Unlock(profileID, "4321"))

	// Activity at minute 4 restarts the countdown, so minute 8 is still in.
	store.advance(4 * time.Minute)
	svc.Touch(profileID)
	store.advance(4 * time.Minute)
	assert.True(t, svc.IsUnlocked(profileID))

	store.advance(6 * time.Minute)
	assert.False(t, svc.IsUnlocked(profileID))
}

func TestTouchWhileLockedDoesNotUnlock(t *testing.T) {
	svc, store, profileID := newTestSession(t, "4321")
	require.NoError(t, svc.Unlock(profileID, "4321"))
	store.advance(10 * time.Minute)

	svc.Touch(profileID)
	assert.False(t, svc.IsUnlocked(profileID))
}

func TestExplicitLock(t *testing.T) {
	svc, _, profileID := newTestSession(t, "4321")
	require.NoError(t, svc.Unlock(profileID, "4321"))
	require.NoError(t, svc.Lock(profileID))
	assert.False(t, svc.IsUnlocked(profileID))
}

func TestIsUnlockedFailsClosed(t *testing.T) {
	svc, store, profileID := newTestSession(t, "4321")
	require.NoError(t, svc.Unlock(profileID, "4321"))

	store.err = assert.AnError
	assert.False(t, svc.IsUnlocked(profileID))
}
