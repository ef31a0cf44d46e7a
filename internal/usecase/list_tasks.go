package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// ListTasksInput contains the filter parameters for listing tasks.
type ListTasksInput struct {
	ParentID         *string // Only children of this parent (nil = all)
	Query            string  // Case-insensitive title/description filter
	IncludeCompleted bool
	Tree             bool // Assemble the parent/subtask forest
}

// ListTasksOutput contains the listed tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the filter, ordered by due date ascending.
// With Tree set, the result is the root tasks with Subtasks populated;
// filters apply before assembly, so a subtask whose parent is filtered out
// disappears along with it.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{ParentID: in.ParentID})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !in.IncludeCompleted && t.Completed {
			continue
		}
		if !t.Matches(in.Query) {
			continue
		}
		filtered = append(filtered, t)
	}

	if in.Tree {
		return &ListTasksOutput{Tasks: domain.BuildTree(filtered)}, nil
	}
	return &ListTasksOutput{Tasks: filtered}, nil
}
