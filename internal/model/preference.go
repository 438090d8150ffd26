package model

import (
	"slices"

	"github.com/google/uuid"
)

// NotificationPreference holds a user's channel and subscription settings.
type NotificationPreference struct {
	UserID             uuid.UUID `json:"user_id"`
	EmailNotifications bool      `json:"email_notifications"`
	NotificationTypes  []string  `json:"notification_types"`
	ReminderDaysBefore []int64   `json:"reminder_days_before"`
}

// DefaultPreference is applied to users without a preference row.
func DefaultPreference(userID uuid.UUID) NotificationPreference {
	return NotificationPreference{
		UserID:             userID,
		EmailNotifications: true,
		NotificationTypes:  []string{TypeRenewalReminder, TypePaymentDue, TypeComplianceCheck},
		ReminderDaysBefore: []int64{30, 14, 7, 1},
	}
}

// Subscribed reports whether the user opted into notifications of the given type.
func (p NotificationPreference) Subscribed(notificationType string) bool {
	return slices.Contains(p.NotificationTypes, notificationType)
}

// DeliveryMode returns the in-app record's channel marker.
func (p NotificationPreference) DeliveryMode() DeliveryMode {
	if p.EmailNotifications {
		return DeliveryBoth
	}
	return DeliveryInApp
}
