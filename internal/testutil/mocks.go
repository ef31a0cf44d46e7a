// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"time"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks     map[string]*domain.Task
	SaveErr   error
	GetErr    error
	ListErr   error
	DeleteErr error
	Saved     []string // IDs passed to Save, in order
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks: make(map[string]*domain.Task),
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns all tasks ordered by due date ascending, like the real store.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter.ParentID != nil {
			if t.ParentID == nil || *t.ParentID != *filter.ParentID {
				continue
			}
		}
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	m.Saved = append(m.Saved, task.ID)
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Tasks, id)
	return nil
}

// MockProgressionRepository is a test double for domain.ProgressionRepository.
type MockProgressionRepository struct {
	Progression domain.Progression
	GetErr      error
	AddErr      error
	AddCalls    []int // point values passed to AddExperience, in order
}

// GetProgression returns the configured progression.
func (m *MockProgressionRepository) GetProgression() (domain.Progression, error) {
	if m.GetErr != nil {
		return domain.Progression{}, m.GetErr
	}
	return m.Progression, nil
}

// AddExperience adds points and records the call.
func (m *MockProgressionRepository) AddExperience(points int) (domain.Progression, error) {
	if m.AddErr != nil {
		return domain.Progression{}, m.AddErr
	}
	m.AddCalls = append(m.AddCalls, points)
	m.Progression = m.Progression.Award(points)
	return m.Progression, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config != nil {
		return m.Config, nil
	}
	return domain.NewDefaultConfig(), nil
}
