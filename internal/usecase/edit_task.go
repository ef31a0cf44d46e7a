package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// EditTaskInput contains the parameters for updating a task.
// Nil pointer fields are left unchanged.
type EditTaskInput struct {
	Title             *string
	Description       *string
	Location          *string
	DueTime           *string
	Priority          *domain.Priority
	Recurrence        *domain.Recurrence
	DueDate           *domain.Date
	RecurrenceEndDate *domain.Date
	ParentID          *string // New parent ID
	ID                string  // Task to update (required)
	ClearParent       bool    // Promote the task to a root
}

// EditTaskOutput contains the result of updating a task.
type EditTaskOutput struct {
	Task *domain.Task
}

// EditTask is the use case for updating tasks.
type EditTask struct {
	tasks domain.TaskRepository
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository) *EditTask {
	return &EditTask{tasks: tasks}
}

func (in EditTaskInput) hasChanges() bool {
	return in.Title != nil || in.Description != nil || in.Location != nil ||
		in.DueTime != nil || in.Priority != nil || in.Recurrence != nil ||
		in.DueDate != nil || in.RecurrenceEndDate != nil ||
		in.ParentID != nil || in.ClearParent
}

// Execute applies the requested field changes to an existing task.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if !in.hasChanges() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("look up task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Location != nil {
		task.Location = *in.Location
	}
	if in.DueTime != nil {
		if *in.DueTime != "" {
			if _, err := time.Parse(domain.TimeLayout, *in.DueTime); err != nil {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTime, *in.DueTime)
			}
		}
		task.DueTime = *in.DueTime
	}
	if in.Priority != nil {
		if !in.Priority.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, *in.Priority)
		}
		task.Priority = in.Priority.Normalize()
	}
	if in.Recurrence != nil {
		if !in.Recurrence.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRecurrence, *in.Recurrence)
		}
		task.Recurrence = *in.Recurrence
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.RecurrenceEndDate != nil {
		task.RecurrenceEndDate = *in.RecurrenceEndDate
	}
	if !task.RecurrenceEndDate.IsZero() && task.RecurrenceEndDate.Before(task.DueDate) {
		return nil, domain.ErrRecurrenceEnd
	}

	switch {
	case in.ClearParent:
		task.ParentID = nil
	case in.ParentID != nil:
		if err := uc.checkParent(task.ID, *in.ParentID); err != nil {
			return nil, err
		}
		task.ParentID = in.ParentID
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &EditTaskOutput{Task: task}, nil
}

// checkParent verifies that parentID exists and that assigning it would not
// make the task an ancestor of itself.
func (uc *EditTask) checkParent(taskID, parentID string) error {
	if parentID == taskID {
		return domain.ErrSelfParent
	}

	seen := map[string]bool{taskID: true}
	for id := parentID; ; {
		if seen[id] {
			return domain.ErrParentCycle
		}
		seen[id] = true

		ancestor, err := uc.tasks.Get(id)
		if err != nil {
			return fmt.Errorf("look up parent: %w", err)
		}
		if ancestor == nil {
			if id == parentID {
				return domain.ErrParentNotFound
			}
			// Broken ancestor link; the chain ends here.
			return nil
		}
		if ancestor.ParentID == nil {
			return nil
		}
		id = *ancestor.ParentID
	}
}
