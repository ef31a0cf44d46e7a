package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is mid-day on Friday 2024-03-15 so start-of-day truncation matters.
var bucketNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func TestBucketize_Partition(t *testing.T) {
	tasks := []*Task{
		{ID: "overdue", DueDate: NewDate(2024, 3, 10)},
		{ID: "today", DueDate: NewDate(2024, 3, 15)},
		{ID: "tomorrow", DueDate: NewDate(2024, 3, 16)},
		{ID: "week", DueDate: NewDate(2024, 3, 19)},
		{ID: "later", DueDate: NewDate(2024, 4, 1)},
	}

	b := Bucketize(bucketNow, tasks)

	require.Len(t, b.Overdue, 1)
	require.Len(t, b.Today, 1)
	require.Len(t, b.Tomorrow, 1)
	require.Len(t, b.ThisWeek, 1)
	require.Len(t, b.Later, 1)
	assert.Equal(t, "overdue", b.Overdue[0].ID)
	assert.Equal(t, "today", b.Today[0].ID)
	assert.Equal(t, "tomorrow", b.Tomorrow[0].ID)
	assert.Equal(t, "week", b.ThisWeek[0].ID)
	assert.Equal(t, "later", b.Later[0].ID)
}

func TestBucketize_HorizonBoundary(t *testing.T) {
	tasks := []*Task{
		{ID: "horizon", DueDate: NewDate(2024, 3, 22)},     // exactly now+7d
		{ID: "past-horizon", DueDate: NewDate(2024, 3, 23)}, // now+8d
	}

	b := Bucketize(bucketNow, tasks)

	// The 7-day horizon day itself belongs to ThisWeek, not Later.
	require.Len(t, b.ThisWeek, 1)
	assert.Equal(t, "horizon", b.ThisWeek[0].ID)
	require.Len(t, b.Later, 1)
	assert.Equal(t, "past-horizon", b.Later[0].ID)
}

func TestBucketize_CompletedOverdueExcluded(t *testing.T) {
	tasks := []*Task{
		{ID: "done-overdue", DueDate: NewDate(2024, 3, 1), Completed: true},
		{ID: "open-overdue", DueDate: NewDate(2024, 3, 1)},
		{ID: "done-today", DueDate: NewDate(2024, 3, 15), Completed: true},
	}

	b := Bucketize(bucketNow, tasks)

	require.Len(t, b.Overdue, 1)
	assert.Equal(t, "open-overdue", b.Overdue[0].ID)
	// Completion only excludes tasks from the overdue bucket.
	require.Len(t, b.Today, 1)
	assert.Equal(t, "done-today", b.Today[0].ID)
}

func TestBucketize_ExactlyOneBucketPerTask(t *testing.T) {
	// Sweep a wide due-date range: every incomplete task lands in exactly
	// one bucket.
	var tasks []*Task
	d := NewDate(2024, 2, 1)
	for i := 0; i < 90; i++ {
		tasks = append(tasks, &Task{ID: d.String(), DueDate: d})
		d = d.AddDays(1)
	}

	b := Bucketize(bucketNow, tasks)

	total := len(b.Overdue) + len(b.Today) + len(b.Tomorrow) + len(b.ThisWeek) + len(b.Later)
	assert.Equal(t, len(tasks), total)

	seen := map[string]int{}
	for _, bucket := range [][]*Task{b.Overdue, b.Today, b.Tomorrow, b.ThisWeek, b.Later} {
		for _, task := range bucket {
			seen[task.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "task %s in %d buckets", id, n)
	}
}
