package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarefa-app/tarefa/internal/domain"
)

func TestAddCommand_CreatesTask(t *testing.T) {
	c, tasks, _ := newTestContainer()

	out, err := execute(t, c, "add", "Buy groceries", "--due", "2024-03-20", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Created task")

	require.Len(t, tasks.Tasks, 1)
	for _, task := range tasks.Tasks {
		assert.Equal(t, "Buy groceries", task.Title)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, domain.NewDate(2024, time.March, 20), task.DueDate)
	}
}

func TestAddCommand_RejectsBadDate(t *testing.T) {
	c, _, _ := newTestContainer()

	_, err := execute(t, c, "add", "x", "--due", "20/03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListCommand_ShowsTree(t *testing.T) {
	c, tasks, _ := newTestContainer()
	tasks.Tasks["aaaa1111-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "aaaa1111-0000-0000-0000-000000000000",
		Title:    "project",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 20),
	}
	parent := "aaaa1111-0000-0000-0000-000000000000"
	tasks.Tasks["bbbb2222-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "bbbb2222-0000-0000-0000-000000000000",
		ParentID: &parent,
		Title:    "phase 1",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 21),
	}

	out, err := execute(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "project")
	assert.Contains(t, out, "  phase 1", "subtask is indented")
	assert.Contains(t, out, "aaaa1111")
}

func TestDoneCommand_ResolvesPrefixAndAwards(t *testing.T) {
	c, tasks, prog := newTestContainer()
	tasks.Tasks["cccc3333-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "cccc3333-0000-0000-0000-000000000000",
		Title:    "write report",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 15),
	}

	out, err := execute(t, c, "done", "cccc3333")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed \"write report\"")
	assert.Contains(t, out, "+10 XP")
	assert.Equal(t, []int{10}, prog.AddCalls)

	out, err = execute(t, c, "done", "cccc3333")
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened")
	assert.Equal(t, []int{10}, prog.AddCalls, "reopening must not award")
}

func TestDoneCommand_AmbiguousPrefix(t *testing.T) {
	c, tasks, _ := newTestContainer()
	for _, id := range []string{"dddd0001", "dddd0002"} {
		tasks.Tasks[id] = &domain.Task{
			ID:       id,
			Title:    id,
			Priority: domain.PriorityMedium,
			DueDate:  domain.NewDate(2024, time.March, 15),
		}
	}

	_, err := execute(t, c, "done", "dddd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestRmCommand_RemovesSubtree(t *testing.T) {
	c, tasks, _ := newTestContainer()
	tasks.Tasks["root0000-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "root0000-0000-0000-0000-000000000000",
		Title:    "project",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 20),
	}
	parent := "root0000-0000-0000-0000-000000000000"
	tasks.Tasks["chld0000-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "chld0000-0000-0000-0000-000000000000",
		ParentID: &parent,
		Title:    "phase 1",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 21),
	}

	out, err := execute(t, c, "rm", "root0000")
	require.NoError(t, err)
	assert.Contains(t, out, "1 subtask(s)")
	assert.Empty(t, tasks.Tasks)
}

func TestEditCommand_NoFlags(t *testing.T) {
	c, tasks, _ := newTestContainer()
	tasks.Tasks["eeee0000-0000-0000-0000-000000000000"] = &domain.Task{
		ID:       "eeee0000-0000-0000-0000-000000000000",
		Title:    "x",
		Priority: domain.PriorityMedium,
		DueDate:  domain.NewDate(2024, time.March, 15),
	}

	_, err := execute(t, c, "edit", "eeee0000")
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}
