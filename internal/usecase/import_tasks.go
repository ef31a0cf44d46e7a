package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// ImportTasksInput contains the serialized data to import.
type ImportTasksInput struct {
	Data []byte
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Imported int
	Skipped  []string // Human-readable reasons for skipped entries
}

// ImportTasks is the use case for loading tasks from a YAML export.
type ImportTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock) *ImportTasks {
	return &ImportTasks{tasks: tasks, clock: clock}
}

// Execute validates and saves each entry. IDs are regenerated, with parent
// references remapped; invalid entries are skipped, not fatal, so one bad
// row does not abort a large import. Experience is never imported, the
// counter only grows through task completion.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var doc exportDocument
	if err := yaml.Unmarshal(in.Data, &doc); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}

	out := &ImportTasksOutput{}
	idMap := make(map[string]string, len(doc.Tasks))
	imported := make([]*domain.Task, 0, len(doc.Tasks))

	for i, entry := range doc.Tasks {
		task, err := uc.convert(entry)
		if err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("entry %d (%q): %v", i+1, entry.Title, err))
			continue
		}
		if entry.ID != "" {
			idMap[entry.ID] = task.ID
		}
		imported = append(imported, task)
	}

	for i, task := range imported {
		if task.ParentID != nil {
			mapped, ok := idMap[*task.ParentID]
			if !ok || mapped == task.ID {
				// Parent was skipped, never exported, or the entry named
				// itself; import as a root.
				task.ParentID = nil
			} else {
				imported[i].ParentID = &mapped
			}
		}
		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save imported task: %w", err)
		}
		out.Imported++
	}
	return out, nil
}

func (uc *ImportTasks) convert(entry taskYAML) (*domain.Task, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := domain.Priority(entry.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, entry.Priority)
	}

	recurrence := domain.Recurrence(entry.Recurrence)
	if !recurrence.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRecurrence, entry.Recurrence)
	}

	dueDate, err := domain.ParseDate(entry.DueDate)
	if err != nil {
		return nil, err
	}

	var endDate domain.Date
	if entry.RecurrenceEndDate != "" {
		endDate, err = domain.ParseDate(entry.RecurrenceEndDate)
		if err != nil {
			return nil, err
		}
		if endDate.Before(dueDate) {
			return nil, domain.ErrRecurrenceEnd
		}
	}

	if entry.DueTime != "" {
		if _, err := time.Parse(domain.TimeLayout, entry.DueTime); err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTime, entry.DueTime)
		}
	}

	created := entry.Created
	if created.IsZero() {
		created = uc.clock.Now()
	}

	task := &domain.Task{
		ID:                uuid.NewString(),
		Created:           created,
		Title:             strings.TrimSpace(entry.Title),
		Description:       entry.Description,
		Location:          entry.Location,
		DueTime:           entry.DueTime,
		Priority:          priority.Normalize(),
		Recurrence:        recurrence,
		DueDate:           dueDate,
		RecurrenceEndDate: endDate,
		Completed:         entry.Completed,
	}
	if entry.Parent != "" {
		parent := entry.Parent
		task.ParentID = &parent
	}
	return task, nil
}
