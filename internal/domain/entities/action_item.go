package entities

import "time"

// Priority levels for action items.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// PriorityRank maps a priority label to its sort rank. Unknown labels rank lowest.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Defaults used when extraction finds no signal.
const (
	UnassignedAssignee  = "Unassigned"
	NoDeadlineSpecified = "No deadline specified"
)

// ActionItem is one task extracted from a meeting transcript.
// It is created once per qualifying sentence and never mutated afterwards.
type ActionItem struct {
	ID          int       `json:"id"`
	Task        string    `json:"task"`
	Assignee    string    `json:"assignee"`
	Deadline    string    `json:"deadline"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	ExtractedAt time.Time `json:"extracted_at"`
}
