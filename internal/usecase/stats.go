package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// StatsPeriod selects the reporting window for the stats view.
type StatsPeriod string

// Stats periods.
const (
	StatsPeriodWeek  StatsPeriod = "week"  // From the Monday of the current week
	StatsPeriodMonth StatsPeriod = "month" // Trailing month
)

// IsValid returns true if the period is a known window.
func (p StatsPeriod) IsValid() bool {
	switch p {
	case StatsPeriodWeek, StatsPeriodMonth:
		return true
	default:
		return false
	}
}

// StatsInput contains the parameters for the stats view.
type StatsInput struct {
	Period StatsPeriod // Empty = week
}

// DailyStats is the completion breakdown for a single day in the window.
type DailyStats struct {
	Date      domain.Date
	Total     int
	Completed int
}

// StatsOutput contains the aggregated completion figures.
type StatsOutput struct {
	PriorityCounts map[domain.Priority]int // Incomplete tasks per tier, all tiers present
	Daily          []DailyStats            // One entry per day, oldest first
	Start          domain.Date
	End            domain.Date
	Total          int
	Completed      int
	CompletionRate float64 // Completed / Total, 0 when the window is empty
}

// Stats is the use case for the completion insights view.
type Stats struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewStats creates a new Stats use case.
func NewStats(tasks domain.TaskRepository, clock domain.Clock) *Stats {
	return &Stats{tasks: tasks, clock: clock}
}

// Execute aggregates tasks due within the window ending today. Recurring
// tasks are counted by occurrence, so a weekday-daily task contributes to
// every weekday in the window.
func (uc *Stats) Execute(ctx context.Context, in StatsInput) (*StatsOutput, error) {
	period := in.Period
	if period == "" {
		period = StatsPeriodWeek
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("unknown stats period %q", period)
	}

	today := domain.DateOf(uc.clock.Now())
	start := today.StartOfWeek()
	if period == StatsPeriodMonth {
		start = today.AddMonths(-1)
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &StatsOutput{
		Start:          start,
		End:            today,
		PriorityCounts: make(map[domain.Priority]int, len(domain.TierOrder())),
	}
	for _, p := range domain.TierOrder() {
		out.PriorityCounts[p] = 0
	}
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if p := t.Priority.Normalize(); p.IsValid() {
			out.PriorityCounts[p]++
		}
	}

	for d := start; !d.After(today); d = d.AddDays(1) {
		day := DailyStats{Date: d}
		for _, t := range tasks {
			if !t.OccursOn(d) {
				continue
			}
			day.Total++
			if t.Completed {
				day.Completed++
			}
		}
		out.Daily = append(out.Daily, day)
		out.Total += day.Total
		out.Completed += day.Completed
	}

	if out.Total > 0 {
		out.CompletionRate = float64(out.Completed) / float64(out.Total)
	}
	return out, nil
}
