package model

// UserAggregate is the derived per-user summary recomputed on every report
// request. It carries no identity beyond the request that built it.
type UserAggregate struct {
	UserID              int64           `json:"user_id"`
	DisplayName         string          `json:"display_name"`
	AvatarURL           string          `json:"avatar_url,omitempty"`
	TodoCount           int             `json:"todo_count"`
	InProgressCount     int             `json:"in_progress_count"`
	ReviewCount         int             `json:"review_count"`
	CompletedCount      int             `json:"completed_count"`
	TotalEstimatedHours float64         `json:"total_estimated_hours"`
	TotalSpentHours     float64         `json:"total_spent_hours"`
	CompletionRate      float64         `json:"completion_rate"`
	Experience          ExperienceLevel `json:"experience_level,omitempty"`
}

// TrackedCount is the completion-rate denominator: records in one of the four
// known statuses. Unknown statuses never count.
func (a UserAggregate) TrackedCount() int {
	return a.TodoCount + a.InProgressCount + a.ReviewCount + a.CompletedCount
}

// CountFor returns the tally for one known status, 0 otherwise.
func (a UserAggregate) CountFor(s Status) int {
	switch s {
	case StatusToDo:
		return a.TodoCount
	case StatusInProgress:
		return a.InProgressCount
	case StatusReview:
		return a.ReviewCount
	case StatusCompleted:
		return a.CompletedCount
	}
	return 0
}

// CommissionRow is one line of the flat-rate analytics table and its CSV
// export. Monetary fields are formatted to 2 decimals at this point and not
// before.
type CommissionRow struct {
	UserID              int64   `json:"user_id"`
	DisplayName         string  `json:"display_name"`
	CompletedCount      int     `json:"completed_count"`
	TrackedCount        int     `json:"tracked_count"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	TotalSpentHours     float64 `json:"total_spent_hours"`
	HourlyRate          string  `json:"hourly_rate"`
	Amount              string  `json:"amount"`
}

// PayrollSummary is the experience-tiered per-user report.
type PayrollSummary struct {
	UserID              int64           `json:"user_id"`
	DisplayName         string          `json:"display_name"`
	Experience          ExperienceLevel `json:"experience_level"`
	TodoCount           int             `json:"todo_count"`
	InProgressCount     int             `json:"in_progress_count"`
	ReviewCount         int             `json:"review_count"`
	CompletedCount      int             `json:"completed_count"`
	CompletionRate      float64         `json:"completion_rate"`
	TotalEstimatedHours float64         `json:"total_estimated_hours"`
	TotalSpentHours     float64         `json:"total_spent_hours"`
	HourlyRate          string          `json:"hourly_rate"`
	Amount              string          `json:"amount"`
}

// ReportSummary is the dashboard headline block.
type ReportSummary struct {
	TotalUsers          int     `json:"total_users"`
	TotalRecords        int     `json:"total_records"`
	TotalCompleted      int     `json:"total_completed"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	TotalSpentHours     float64 `json:"total_spent_hours"`
	TotalPayout         string  `json:"total_payout"`
}
