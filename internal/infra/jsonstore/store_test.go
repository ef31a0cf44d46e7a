package jsonstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarefa-app/tarefa/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "tarefa.json"))
	require.NoError(t, s.Initialize())
	return s
}

func TestStore_InitializeIsIdempotent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "tarefa.json"))

	assert.False(t, s.IsInitialized())
	require.NoError(t, s.Initialize())
	assert.True(t, s.IsInitialized())

	// Re-initializing must not wipe existing data.
	require.NoError(t, s.Save(&domain.Task{ID: "a", Title: "Keep me"}))
	require.NoError(t, s.Initialize())
	task, err := s.Get("a")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "Keep me", task.Title)
}

func TestStore_NotInitialized(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "tarefa.json"))

	_, err := s.List(domain.TaskFilter{})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestStore_SaveGetDelete(t *testing.T) {
	s := newTestStore(t)

	task := &domain.Task{
		ID:       "t1",
		Title:    "Water the plants",
		DueDate:  domain.NewDate(2024, time.March, 15),
		DueTime:  "08:30",
		Priority: domain.PriorityMedium,
	}
	require.NoError(t, s.Save(task))

	got, err := s.Get("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "Water the plants", got.Title)
	assert.Equal(t, domain.NewDate(2024, time.March, 15), got.DueDate)
	assert.Equal(t, "08:30", got.DueTime)

	require.NoError(t, s.Delete("t1"))
	got, err = s.Get("t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	task, err := s.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestStore_ListOrderedByDueDate(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(&domain.Task{ID: "late", DueDate: domain.NewDate(2024, time.April, 1)}))
	require.NoError(t, s.Save(&domain.Task{ID: "early", DueDate: domain.NewDate(2024, time.March, 1)}))
	require.NoError(t, s.Save(&domain.Task{ID: "mid", DueDate: domain.NewDate(2024, time.March, 15)}))

	tasks, err := s.List(domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "early", tasks[0].ID)
	assert.Equal(t, "mid", tasks[1].ID)
	assert.Equal(t, "late", tasks[2].ID)
}

func TestStore_ListParentFilter(t *testing.T) {
	s := newTestStore(t)

	parent := "p"
	require.NoError(t, s.Save(&domain.Task{ID: "p", Title: "Parent"}))
	require.NoError(t, s.Save(&domain.Task{ID: "c1", ParentID: &parent}))
	require.NoError(t, s.Save(&domain.Task{ID: "c2", ParentID: &parent}))
	require.NoError(t, s.Save(&domain.Task{ID: "other"}))

	children, err := s.List(domain.TaskFilter{ParentID: &parent})
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, c := range children {
		require.NotNil(t, c.ParentID)
		assert.Equal(t, "p", *c.ParentID)
	}
}

func TestStore_Progression(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProgression()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 1, p.Level())

	p, err = s.AddExperience(domain.CompletionPoints)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Experience)

	// The counter persists across store handles.
	s2 := New(s.path)
	p, err = s2.GetProgression()
	require.NoError(t, err)
	assert.Equal(t, 10, p.Experience)
}

func TestStore_TaskRoundTripPreservesRecurrence(t *testing.T) {
	s := newTestStore(t)

	task := &domain.Task{
		ID:                "r1",
		Title:             "Standup",
		DueDate:           domain.NewDate(2024, time.March, 4),
		Priority:          domain.PriorityHigh,
		Recurrence:        domain.RecurrenceDaily,
		RecurrenceEndDate: domain.NewDate(2024, time.June, 28),
	}
	require.NoError(t, s.Save(task))

	got, err := s.Get("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RecurrenceDaily, got.Recurrence)
	assert.Equal(t, domain.NewDate(2024, time.June, 28), got.RecurrenceEndDate)
	assert.True(t, got.OccursOn(domain.NewDate(2024, time.March, 5)))
}
