package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarefa-app/tarefa/internal/testutil"
)

func TestListTasks_FiltersCompletedByDefault(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "t1", "open", date(2024, time.March, 20))
	done := seedTask(repo, "t2", "done", date(2024, time.March, 21))
	done.Completed = true
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "open", out.Tasks[0].Title)

	out, err = uc.Execute(context.Background(), ListTasksInput{IncludeCompleted: true})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
}

func TestListTasks_QueryMatchesTitleAndDescription(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "t1", "Buy groceries", date(2024, time.March, 20))
	desc := seedTask(repo, "t2", "Errands", date(2024, time.March, 21))
	desc.Description = "buy stamps at the post office"
	seedTask(repo, "t3", "Write report", date(2024, time.March, 22))
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{Query: "BUY"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Buy groceries", out.Tasks[0].Title)
	assert.Equal(t, "Errands", out.Tasks[1].Title)
}

func TestListTasks_TreeAssemblesForest(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "root", "project", date(2024, time.March, 20))
	child := seedTask(repo, "child", "phase 1", date(2024, time.March, 21))
	child.ParentID = strPtr("root")
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{Tree: true})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	require.Len(t, out.Tasks[0].Subtasks, 1)
	assert.Equal(t, "phase 1", out.Tasks[0].Subtasks[0].Title)
}

func TestListTasks_ByParent(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(repo, "root", "project", date(2024, time.March, 20))
	child := seedTask(repo, "child", "phase 1", date(2024, time.March, 21))
	child.ParentID = strPtr("root")
	seedTask(repo, "other", "unrelated", date(2024, time.March, 22))
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{ParentID: strPtr("root")})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "phase 1", out.Tasks[0].Title)
}
