package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling task completion.
type ToggleTaskInput struct {
	ID string
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task        *domain.Task
	Message     string             // Motivational message, set only when Awarded
	Progression domain.Progression // State after the toggle
	Points      int                // Experience awarded by this toggle
	Awarded     bool               // True on an incomplete-to-complete transition
}

// ToggleTask is the use case for flipping a task's completion flag.
// Completing a task awards experience; un-completing never deducts it.
type ToggleTask struct {
	tasks       domain.TaskRepository
	progression domain.ProgressionRepository
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, progression domain.ProgressionRepository) *ToggleTask {
	return &ToggleTask{tasks: tasks, progression: progression}
}

// Execute flips the completion flag and persists it. On an incomplete-to-
// complete transition it then increments experience as a second write; the
// completion stands even if the increment fails.
func (uc *ToggleTask) Execute(ctx context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("look up task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	completing := !task.Completed
	task.Completed = completing

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	out := &ToggleTaskOutput{Task: task}

	if completing {
		prog, err := uc.progression.AddExperience(domain.CompletionPoints)
		if err != nil {
			return nil, fmt.Errorf("award experience: %w", err)
		}
		out.Progression = prog
		out.Points = domain.CompletionPoints
		out.Awarded = true
		out.Message = domain.RandomCompletionMessage()
		return out, nil
	}

	prog, err := uc.progression.GetProgression()
	if err != nil {
		return nil, fmt.Errorf("read progression: %w", err)
	}
	out.Progression = prog
	return out, nil
}
