package model

// DispatchSummary is the aggregate result of one dispatcher run.
type DispatchSummary struct {
	Processed int      `json:"processed"`
	Errored   int      `json:"errors"`
	Total     int      `json:"total"`
	Exhausted int      `json:"exhausted"`
	Errors    []string `json:"-"`
}

// TrialSummary is the aggregate result of one trial reminder run.
type TrialSummary struct {
	ThreeDaySent int      `json:"three_day_reminders_sent"`
	OneDaySent   int      `json:"one_day_reminders_sent"`
	Errors       []string `json:"-"`
}

// PurgeSummary is the aggregate result of one retention run.
type PurgeSummary struct {
	ProcessedDeleted int64 `json:"processed_deleted"`
	FailedDeleted    int64 `json:"failed_deleted"`
}
