package model

import "time"

// StatusRecord is one observed status event for a subtask, attributed to the
// user who made the update. Several events may exist for the same
// (task, assignee) pair; only the one with the latest UpdatedAt is
// authoritative.
type StatusRecord struct {
	TaskID         int64           `json:"task_id"`
	SubtaskID      int64           `json:"subtask_id"`
	AssigneeID     int64           `json:"assignee_id"`
	AssigneeName   string          `json:"assignee_name"`
	AvatarURL      string          `json:"avatar_url,omitempty"`
	Status         Status          `json:"status"`
	Priority       Priority        `json:"priority,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
	EstimatedHours float64         `json:"estimated_hours"`
	SpentHours     float64         `json:"spent_hours"`
	Experience     ExperienceLevel `json:"experience_level,omitempty"`
	AttachmentURLs []string        `json:"attachment_urls,omitempty"`
}

// SyncRun is one recorded pull from the external task-service.
type SyncRun struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	RecordCount int       `json:"record_count"`
	DurationMs  int64     `json:"duration_ms"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
