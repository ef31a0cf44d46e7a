package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// DashboardInput contains the filter parameters for the dashboard view.
type DashboardInput struct {
	Query            string // Case-insensitive title/description filter
	IncludeCompleted bool
}

// DashboardSection is one relative-time window of the dashboard, with its
// tasks partitioned into priority tiers.
type DashboardSection struct {
	Title  string
	Tasks  []*domain.Task
	Groups []domain.PriorityGroup
}

// DashboardOutput contains the bucketed dashboard sections.
type DashboardOutput struct {
	Sections []DashboardSection
	Total    int // Tasks across all sections
}

// Dashboard is the use case for the time-bucketed task overview.
type Dashboard struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewDashboard creates a new Dashboard use case.
func NewDashboard(tasks domain.TaskRepository, clock domain.Clock) *Dashboard {
	return &Dashboard{tasks: tasks, clock: clock}
}

// Execute buckets tasks into Overdue, Today, Tomorrow, This Week and Later
// relative to the current calendar day. Empty sections are omitted. Within a
// section, tasks are partitioned into priority tiers, urgent first.
func (uc *Dashboard) Execute(ctx context.Context, in DashboardInput) (*DashboardOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
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

	b := domain.Bucketize(uc.clock.Now(), filtered)

	out := &DashboardOutput{}
	for _, s := range []struct {
		title string
		tasks []*domain.Task
	}{
		{"Overdue", b.Overdue},
		{"Today", b.Today},
		{"Tomorrow", b.Tomorrow},
		{"This Week", b.ThisWeek},
		{"Later", b.Later},
	} {
		if len(s.tasks) == 0 {
			continue
		}
		out.Sections = append(out.Sections, DashboardSection{
			Title:  s.title,
			Tasks:  s.tasks,
			Groups: domain.GroupByPriority(s.tasks),
		})
		out.Total += len(s.tasks)
	}
	return out, nil
}
