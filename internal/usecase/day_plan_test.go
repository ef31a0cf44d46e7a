package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/testutil"
)

func TestDayPlan_DefaultsToToday(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "t1", "standup", date(2024, time.March, 15))
	seedTask(repo, "t2", "not today", date(2024, time.March, 16))
	uc := NewDayPlan(repo, testClock())

	out, err := uc.Execute(context.Background(), DayPlanInput{})
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 15), out.Date)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "standup", out.Tasks[0].Title)
}

func TestDayPlan_ResolvesRecurrence(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	daily := seedTask(repo, "daily", "standup", date(2024, time.March, 1))
	daily.Recurrence = domain.RecurrenceDaily
	weekly := seedTask(repo, "weekly", "retro", date(2024, time.March, 1)) // a Friday
	weekly.Recurrence = domain.RecurrenceWeekly
	uc := NewDayPlan(repo, testClock())

	// 2024-03-18 is a Monday: the weekday-daily task occurs, the
	// Friday-anchored weekly one does not.
	out, err := uc.Execute(context.Background(), DayPlanInput{Date: date(2024, time.March, 18)})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "standup", out.Tasks[0].Title)

	// Friday: both occur.
	out, err = uc.Execute(context.Background(), DayPlanInput{Date: date(2024, time.March, 22)})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)

	// Saturday: neither.
	out, err = uc.Execute(context.Background(), DayPlanInput{Date: date(2024, time.March, 23)})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}

func TestDayPlan_MatchingRootBringsSubtasks(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "root", "release", date(2024, time.March, 15))
	child := seedTask(repo, "child", "tag version", date(2024, time.March, 14))
	child.ParentID = strPtr("root")
	uc := NewDayPlan(repo, testClock())

	out, err := uc.Execute(context.Background(), DayPlanInput{Date: date(2024, time.March, 15)})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	require.Len(t, out.Tasks[0].Subtasks, 1)
	assert.Equal(t, "tag version", out.Tasks[0].Subtasks[0].Title)
}
