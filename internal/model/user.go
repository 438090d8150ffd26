package model

import "github.com/google/uuid"

// Profile is the application-side user profile.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name"`
}
