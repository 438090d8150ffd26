package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateScheduledRequest enqueues a scheduled notification for the caller.
type CreateScheduledRequest struct {
	EntityID         *uuid.UUID     `json:"entity_id"`
	NotificationType string         `json:"notification_type" validate:"required,oneof=renewal_reminder payment_due compliance_check"`
	Title            string         `json:"title" validate:"required,max=200"`
	Message          string         `json:"message" validate:"required,max=2000"`
	ScheduledFor     time.Time      `json:"scheduled_for" validate:"required"`
	MaxRetries       int            `json:"max_retries" validate:"omitempty,min=1,max=10"`
	Metadata         map[string]any `json:"metadata"`
}

// PageQuery is the limit/offset pair accepted by list endpoints.
type PageQuery struct {
	Limit  int `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `form:"offset" validate:"omitempty,min=0"`
}

const defaultPageSize = 50

// Normalize applies the default page size.
func (q PageQuery) Normalize() (limit, offset int) {
	if q.Limit == 0 {
		return defaultPageSize, q.Offset
	}
	return q.Limit, q.Offset
}
