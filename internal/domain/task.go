// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TimeLayout is the wire format for the optional due time-of-day.
const TimeLayout = "15:04"

// Task represents a unit of work owned by the user.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created           time.Time  `json:"created"`                     // Creation time
	ParentID          *string    `json:"parentID,omitempty"`          // Parent task ID (nil = root task); weak reference
	Subtasks          []*Task    `json:"-"`                           // Populated by BuildTree, never persisted
	Title             string     `json:"title"`                       // Title (required)
	Description       string     `json:"description,omitempty"`       // Description (optional)
	Location          string     `json:"location,omitempty"`          // Location (optional, display-only)
	DueTime           string     `json:"dueTime,omitempty"`           // Time of day in HH:MM, display-only
	ID                string     `json:"-"`                           // Task ID (stored as map key, not in value)
	Priority          Priority   `json:"priority"`                    // Urgency tier
	Recurrence        Recurrence `json:"recurrence,omitempty"`        // Repeat rule (empty = none)
	DueDate           Date       `json:"dueDate"`                     // Due date / recurrence anchor
	RecurrenceEndDate Date       `json:"recurrenceEndDate,omitempty"` // Last date the rule may generate occurrences
	Completed         bool       `json:"completed"`                   // Completion flag, user-toggled
}

// IsRoot returns true if this is a root task (no parent).
func (t *Task) IsRoot() bool {
	return t.ParentID == nil
}

// IsRecurring returns true if the task carries a repeat rule.
func (t *Task) IsRecurring() bool {
	switch t.Recurrence {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// Matches reports whether the task's title or description contains the query,
// case-insensitively. An empty query matches everything.
func (t *Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}
