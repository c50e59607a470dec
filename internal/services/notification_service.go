package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
	At      time.Time        `json:"at"`
}

// NotificationStore is the FIFO backing the transient message queue.
type NotificationStore interface {
	PushNotification(profileID string, payload interface{}, ttl time.Duration) error
	DrainNotifications(profileID string) ([]string, error)
}

// NotificationService is the single owner of transient operator messages:
// producers enqueue, the client's poll drains, undrained entries expire
// after the display window.
type NotificationService interface {
	Enqueue(profileID uuid.UUID, message string, kind NotificationKind)
	Drain(profileID uuid.UUID) ([]Notification, error)
}

type notificationService struct {
	store      NotificationStore
	displayTTL time.Duration
}

func NewNotificationService(store NotificationStore, displayTTL time.Duration) NotificationService {
	return &notificationService{store: store, displayTTL: displayTTL}
}

// Enqueue is fire-and-forget; a notification that cannot be queued is
// simply lost, never an error for the operation that produced it.
func (s *notificationService) Enqueue(profileID uuid.UUID, message string, kind NotificationKind) {
	s.store.PushNotification(profileID.String(), Notification{
		Message: message,
		Kind:    kind,
		At:      time.Now(),
	}, s.displayTTL)
}

func (s *notificationService) Drain(profileID uuid.UUID) ([]Notification, error) {
	raw, err := s.store.DrainNotifications(profileID.String())
	if err != nil {
		return nil, err
	}
	notifications := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
