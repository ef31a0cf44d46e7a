// Package usecase contains the application use cases, one per operation.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tarefa-app/tarefa/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	ParentID          *string           // Parent task ID (nil = root task)
	Title             string            // Title (required)
	Description       string            // Description (optional)
	Location          string            // Location (optional)
	DueTime           string            // Time of day in HH:MM (optional, display-only)
	Priority          domain.Priority   // Empty = medium
	Recurrence        domain.Recurrence // Empty = none
	DueDate           domain.Date       // Zero = today
	RecurrenceEndDate domain.Date       // Optional rule cutoff
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for creating tasks.
type AddTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock) *AddTask {
	return &AddTask{tasks: tasks, clock: clock}
}

// Execute validates the input and persists a new task.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, in.Priority)
	}

	if !in.Recurrence.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRecurrence, in.Recurrence)
	}

	if in.DueTime != "" {
		if _, err := time.Parse(domain.TimeLayout, in.DueTime); err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTime, in.DueTime)
		}
	}

	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = domain.DateOf(uc.clock.Now())
	}

	if !in.RecurrenceEndDate.IsZero() && in.RecurrenceEndDate.Before(dueDate) {
		return nil, domain.ErrRecurrenceEnd
	}

	if in.ParentID != nil {
		parent, err := uc.tasks.Get(*in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("look up parent: %w", err)
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
	}

	task := &domain.Task{
		ID:                uuid.NewString(),
		Created:           uc.clock.Now(),
		ParentID:          in.ParentID,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Location:          in.Location,
		DueTime:           in.DueTime,
		Priority:          priority.Normalize(),
		Recurrence:        in.Recurrence,
		DueDate:           dueDate,
		RecurrenceEndDate: in.RecurrenceEndDate,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &AddTaskOutput{Task: task}, nil
}
