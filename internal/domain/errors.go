package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrParentNotFound    = errors.New("parent task not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidDate       = errors.New("invalid date, expected yyyy-mm-dd")
	ErrInvalidTime       = errors.New("invalid time, expected HH:MM")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrRecurrenceEnd     = errors.New("recurrence end date is before the due date")
	ErrSelfParent        = errors.New("task cannot be its own parent")
	ErrParentCycle       = errors.New("parent assignment would create a cycle")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrNotInitialized    = errors.New("tarefa not initialized (run 'tarefa init' first)")
)
