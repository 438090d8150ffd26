package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMode tells the UI which channels a notification was routed to.
type DeliveryMode string

const (
	DeliveryEmail DeliveryMode = "email"
	DeliveryInApp DeliveryMode = "in_app"
	DeliveryBoth  DeliveryMode = "both"
)

// Notification is an in-app notification record shown to the user.
type Notification struct {
	ID               uuid.UUID    `json:"id"`
	UserID           uuid.UUID    `json:"user_id"`
	Type             string       `json:"type"`
	Title            string       `json:"title"`
	Message          string       `json:"message"`
	NotificationType DeliveryMode `json:"notification_type"`
	Read             bool         `json:"read"`
	EmailSent        bool         `json:"email_sent"`
	Metadata         Metadata     `json:"metadata"`
	CreatedAt        time.Time    `json:"created_at"`
}
