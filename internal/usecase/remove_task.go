package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	ID string
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task    *domain.Task // The removed task
	Removed int          // Number of records removed, including subtasks
}

// RemoveTask is the use case for deleting a task and its subtasks.
type RemoveTask struct {
	tasks domain.TaskRepository
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(tasks domain.TaskRepository) *RemoveTask {
	return &RemoveTask{tasks: tasks}
}

// Execute deletes the task and, transitively, every task parented under it.
// Leaving the subtasks behind would only strand them: a task whose parent no
// longer resolves is dropped from every view.
func (uc *RemoveTask) Execute(ctx context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("look up task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	all, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	children := make(map[string][]string)
	for _, t := range all {
		if t.ParentID != nil {
			children[*t.ParentID] = append(children[*t.ParentID], t.ID)
		}
	}

	// Breadth-first over parent links; the seen map guards against parent
	// cycles in hand-edited stores.
	doomed := []string{in.ID}
	seen := map[string]bool{in.ID: true}
	for i := 0; i < len(doomed); i++ {
		for _, childID := range children[doomed[i]] {
			if seen[childID] {
				continue
			}
			seen[childID] = true
			doomed = append(doomed, childID)
		}
	}

	for _, id := range doomed {
		if err := uc.tasks.Delete(id); err != nil {
			return nil, fmt.Errorf("delete task %s: %w", id, err)
		}
	}

	return &RemoveTaskOutput{Task: task, Removed: len(doomed)}, nil
}
