package model

import "github.com/google/uuid"

// EmailMessage is a rendered email ready for delivery.
type EmailMessage struct {
	NotificationID uuid.UUID `json:"notification_id"` // uuid.Nil when not tied to an in-app record
	To             string    `json:"to"`
	Subject        string    `json:"subject"`
	HTML           string    `json:"html"`
}

// NotificationEmail is the data a notification email is rendered from.
type NotificationEmail struct {
	NotificationID uuid.UUID
	To             string
	RecipientName  string
	Title          string
	Message        string
	Type           string
	EntityName     string
	DueDate        string
	Amount         string
}
