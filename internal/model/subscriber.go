package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a billing subscriber that may be in its trial period.
type Subscriber struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	TrialStart time.Time `json:"trial_start"`
}

// TrialTier is a reminder sent a fixed number of days before the trial ends.
type TrialTier struct {
	Name     string
	DaysLeft int
}

var (
	TrialTierThreeDays = TrialTier{Name: "3_days", DaysLeft: 3}
	TrialTierOneDay    = TrialTier{Name: "1_day", DaysLeft: 1}
)

// TrialTiers lists tiers from most to least urgent.
var TrialTiers = []TrialTier{TrialTierOneDay, TrialTierThreeDays}
