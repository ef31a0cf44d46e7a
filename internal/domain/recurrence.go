package domain

import "time"

// Recurrence is the repeat rule of a task. A task with a recurrence is a
// rule, not an instance: occurrences are always derived on the fly and
// never materialized as separate records.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily" // weekdays only, despite the name
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// IsValid returns true if the recurrence is a known rule (including none).
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the recurrence.
func (r Recurrence) Display() string {
	switch r {
	case RecurrenceDaily:
		return "Daily (Mon-Fri)"
	case RecurrenceWeekly:
		return "Weekly"
	case RecurrenceMonthly:
		return "Monthly"
	default:
		return ""
	}
}

// OccursOn reports whether the task is due on the given calendar date.
// Pure and total: safe to call concurrently for arbitrary tasks and dates.
//
// Non-recurring tasks (and tasks with an unrecognized recurrence value)
// occur only on their exact due date. Recurring tasks stop strictly after
// RecurrenceEndDate when set. "daily" means Monday through Friday only.
// "monthly" matches the anchor's day-of-month exactly: an anchor on the
// 31st produces no occurrence in shorter months, it never clamps or rolls
// over.
func (t *Task) OccursOn(date Date) bool {
	switch t.Recurrence {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
	default:
		return date == t.DueDate
	}

	if !t.RecurrenceEndDate.IsZero() && date.After(t.RecurrenceEndDate) {
		return false
	}
	if date.Before(t.DueDate) {
		return false
	}

	switch t.Recurrence {
	case RecurrenceDaily:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case RecurrenceWeekly:
		return date.Weekday() == t.DueDate.Weekday()
	case RecurrenceMonthly:
		return date.Day == t.DueDate.Day
	}
	return false
}
