package model

import "strings"

// Status is the closed set of workflow states a subtask moves through.
// Upstream payloads spell these inconsistently ("in progress", "In Progress"),
// so every comparison goes through ParseStatus instead of raw strings.
type Status string

const (
	StatusUnknown    Status = ""
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusCompleted  Status = "Completed"
)

func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to do", "todo":
		return StatusToDo
	case "in progress", "inprogress":
		return StatusInProgress
	case "review", "in review":
		return StatusReview
	case "completed", "complete", "done":
		return StatusCompleted
	}
	return StatusUnknown
}

func (s Status) Known() bool {
	return s != StatusUnknown
}

// AllStatuses in workflow order.
func AllStatuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusReview, StatusCompleted}
}

type Priority string

const (
	PriorityUnknown  Priority = ""
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "medium", "normal":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "critical", "urgent":
		return PriorityCritical
	}
	return PriorityUnknown
}

// ExperienceLevel drives the tiered hourly-rate lookup. Unknown levels fall
// back to the entry-level rate.
type ExperienceLevel string

const (
	ExperienceUnknown ExperienceLevel = ""
	ExperienceEntry   ExperienceLevel = "Entry Level"
	ExperienceMid     ExperienceLevel = "Mid Level"
	ExperienceSenior  ExperienceLevel = "Senior Level"
)

func ParseExperienceLevel(s string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry level", "entry", "junior":
		return ExperienceEntry
	case "mid level", "mid", "intermediate":
		return ExperienceMid
	case "senior level", "senior":
		return ExperienceSenior
	}
	return ExperienceUnknown
}
