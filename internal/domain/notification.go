package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// NotificationTTL is how long a transient notification stays visible before
// auto-dismissing.
const NotificationTTL = 3 * time.Second

// Notification is a transient toast-style message. ExpiresAt tells the
// client when to dismiss it.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewNotification(kind, message string) Notification {
	return Notification{
		ID:        uuid.New(),
		Type:      kind,
		Message:   message,
		ExpiresAt: time.Now().Add(NotificationTTL),
	}
}
