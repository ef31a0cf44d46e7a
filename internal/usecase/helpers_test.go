package usecase

import (
	"time"

	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/testutil"
)

// testNow is a fixed Friday used as "now" across use case tests.
var testNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func testClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

func date(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(y, m, d)
}

func strPtr(s string) *string {
	return &s
}

func priorityPtr(p domain.Priority) *domain.Priority {
	return &p
}

func datePtr(d domain.Date) *domain.Date {
	return &d
}

func seedTask(repo *testutil.MockTaskRepository, id, title string, due domain.Date) *domain.Task {
	t := &domain.Task{
		ID:       id,
		Created:  testNow,
		Title:    title,
		Priority: domain.PriorityMedium,
		DueDate:  due,
	}
	repo.Tasks[id] = t
	return t
}
