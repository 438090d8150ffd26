package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle state of a scheduled notification.
//
// pending -> claimed -> done | failed, and pending -> cancelled.
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusClaimed   ScheduleStatus = "claimed"
	StatusDone      ScheduleStatus = "done"
	StatusFailed    ScheduleStatus = "failed"
	StatusCancelled ScheduleStatus = "cancelled"
)

// Notification types the default preference subscribes to.
const (
	TypeRenewalReminder = "renewal_reminder"
	TypePaymentDue      = "payment_due"
	TypeComplianceCheck = "compliance_check"
)

// ScheduledNotification is a queued, time-triggered notification awaiting dispatch.
type ScheduledNotification struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	EntityID         *uuid.UUID     `json:"entity_id,omitempty"`
	NotificationType string         `json:"notification_type"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	ScheduledFor     time.Time      `json:"scheduled_for"`
	Status           ScheduleStatus `json:"status"`
	Processed        bool           `json:"processed"`
	ProcessedAt      *time.Time     `json:"processed_at,omitempty"`
	RetryCount       int            `json:"retry_count"`
	MaxRetries       int            `json:"max_retries"`
	ErrorMessage     *string        `json:"error_message,omitempty"`
	Metadata         Metadata       `json:"metadata"`
	CreatedAt        time.Time      `json:"created_at"`
}

// RetryState is the retry bookkeeping of a row after a failed attempt.
type RetryState struct {
	RetryCount int
	MaxRetries int
	Status     ScheduleStatus
}

// Exhausted reports whether the row will never be selected again.
func (r RetryState) Exhausted() bool {
	return r.RetryCount >= r.MaxRetries
}

// StatusCacheKey is the cache key holding the status of a user's scheduled notification.
func StatusCacheKey(userID, id uuid.UUID) string {
	return fmt.Sprintf("scheduled:%s:%s", userID, id)
}
