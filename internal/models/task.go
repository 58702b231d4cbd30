package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank orders priorities by severity: High=3, Medium=2, Low=1.
// The labels don't sort alphabetically in severity order, so any
// priority comparison must go through this.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

func (p Priority) Valid() bool {
	return p.Rank() != 0
}

// ParsePriority falls back to PriorityMedium for empty or unknown values.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if !p.Valid() {
		return PriorityMedium
	}
	return p
}

type Task struct {
	ID          string
	UserID      string
	Description string
	Priority    Priority
	CreatedAt   time.Time
	Completed   bool
}

// DisplayDescriptionLimit caps descriptions at presentation time.
// Stored descriptions are never truncated.
const DisplayDescriptionLimit = 100

func (t *Task) DisplayDescription() string {
	runes := []rune(t.Description)
	if len(runes) <= DisplayDescriptionLimit {
		return t.Description
	}
	return string(runes[:DisplayDescriptionLimit])
}
