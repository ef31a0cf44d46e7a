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

func TestExportImport_RoundTrip(t *testing.T) {
	src := testutil.NewMockTaskRepository()
	root := seedTask(src, "root", "project", date(2024, time.March, 20))
	root.Recurrence = domain.RecurrenceWeekly
	root.RecurrenceEndDate = date(2024, time.June, 1)
	root.DueTime = "09:30"
	child := seedTask(src, "child", "phase 1", date(2024, time.March, 21))
	child.ParentID = strPtr("root")
	child.Completed = true
	prog := &testutil.MockProgressionRepository{Progression: domain.Progression{Experience: 120}}

	exported, err := NewExportTasks(src, prog, testClock()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, exported.Count)

	dst := testutil.NewMockTaskRepository()
	out, err := NewImportTasks(dst, testClock()).Execute(context.Background(), ImportTasksInput{Data: exported.Data})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Imported)
	assert.Empty(t, out.Skipped)

	all, err := dst.List(domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	// IDs are regenerated but the parent edge survives the remap.
	roots := domain.BuildTree(all)
	require.Len(t, roots, 1)
	assert.Equal(t, "project", roots[0].Title)
	assert.Equal(t, domain.RecurrenceWeekly, roots[0].Recurrence)
	assert.Equal(t, date(2024, time.June, 1), roots[0].RecurrenceEndDate)
	assert.Equal(t, "09:30", roots[0].DueTime)
	assert.NotEqual(t, "root", roots[0].ID)
	require.Len(t, roots[0].Subtasks, 1)
	assert.True(t, roots[0].Subtasks[0].Completed)
}

func TestImportTasks_SkipsInvalidEntries(t *testing.T) {
	data := []byte(`
tasks:
  - id: ok
    title: valid task
    due_date: "2024-03-20"
    priority: high
  - id: bad-date
    title: broken
    due_date: "2024-02-30"
    priority: low
  - id: no-title
    title: "   "
    due_date: "2024-03-20"
    priority: low
  - id: bad-priority
    title: also broken
    due_date: "2024-03-20"
    priority: critical
`)
	dst := testutil.NewMockTaskRepository()
	out, err := NewImportTasks(dst, testClock()).Execute(context.Background(), ImportTasksInput{Data: data})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Imported)
	assert.Len(t, out.Skipped, 3)
	all, err := dst.List(domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "valid task", all[0].Title)
	assert.Equal(t, domain.PriorityHigh, all[0].Priority)
}

func TestImportTasks_OrphanParentBecomesRoot(t *testing.T) {
	data := []byte(`
tasks:
  - id: child
    title: stranded
    due_date: "2024-03-20"
    parent: never-exported
`)
	dst := testutil.NewMockTaskRepository()
	out, err := NewImportTasks(dst, testClock()).Execute(context.Background(), ImportTasksInput{Data: data})
	require.NoError(t, err)
	require.Equal(t, 1, out.Imported)

	all, err := dst.List(domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].ParentID)
}

func TestImportTasks_MalformedYAML(t *testing.T) {
	_, err := NewImportTasks(testutil.NewMockTaskRepository(), testClock()).
		Execute(context.Background(), ImportTasksInput{Data: []byte("tasks: [")})
	assert.Error(t, err)
}
