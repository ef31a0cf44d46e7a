package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// DayPlanInput contains the parameters for the per-day plan view.
type DayPlanInput struct {
	Date domain.Date // Zero = today
}

// DayPlanOutput contains the tasks occurring on the requested day.
type DayPlanOutput struct {
	Tasks []*domain.Task // Root tasks with Subtasks populated
	Date  domain.Date
}

// DayPlan is the use case for listing the tasks that occur on a given day,
// with recurrence resolved.
type DayPlan struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewDayPlan creates a new DayPlan use case.
func NewDayPlan(tasks domain.TaskRepository, clock domain.Clock) *DayPlan {
	return &DayPlan{tasks: tasks, clock: clock}
}

// Execute resolves each root task's recurrence rule against the requested
// date. Recurrence is evaluated on the root only; a matching root brings its
// whole subtask tree along.
func (uc *DayPlan) Execute(ctx context.Context, in DayPlanInput) (*DayPlanOutput, error) {
	date := in.Date
	if date.IsZero() {
		date = domain.DateOf(uc.clock.Now())
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var occurring []*domain.Task
	for _, root := range domain.BuildTree(tasks) {
		if root.OccursOn(date) {
			occurring = append(occurring, root)
		}
	}

	return &DayPlanOutput{Tasks: occurring, Date: date}, nil
}
