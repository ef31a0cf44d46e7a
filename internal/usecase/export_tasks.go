package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// taskYAML is the portable interchange form of a task. Dates are plain
// yyyy-mm-dd strings so exports stay hand-editable.
type taskYAML struct {
	Created           time.Time `yaml:"created,omitempty"`
	ID                string    `yaml:"id"`
	Parent            string    `yaml:"parent,omitempty"`
	Title             string    `yaml:"title"`
	Description       string    `yaml:"description,omitempty"`
	Location          string    `yaml:"location,omitempty"`
	DueDate           string    `yaml:"due_date"`
	DueTime           string    `yaml:"due_time,omitempty"`
	Priority          string    `yaml:"priority"`
	Recurrence        string    `yaml:"recurrence,omitempty"`
	RecurrenceEndDate string    `yaml:"recurrence_end_date,omitempty"`
	Completed         bool      `yaml:"completed,omitempty"`
}

// exportDocument is the top-level structure of an export file.
type exportDocument struct {
	Exported    time.Time          `yaml:"exported"`
	Progression domain.Progression `yaml:"progression"`
	Tasks       []taskYAML         `yaml:"tasks"`
}

// ExportTasksOutput contains the serialized export.
type ExportTasksOutput struct {
	Data  []byte
	Count int
}

// ExportTasks is the use case for serializing the store to YAML.
type ExportTasks struct {
	tasks       domain.TaskRepository
	progression domain.ProgressionRepository
	clock       domain.Clock
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository, progression domain.ProgressionRepository, clock domain.Clock) *ExportTasks {
	return &ExportTasks{tasks: tasks, progression: progression, clock: clock}
}

// Execute serializes every task plus the progression record, in due-date
// order.
func (uc *ExportTasks) Execute(ctx context.Context) (*ExportTasksOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	prog, err := uc.progression.GetProgression()
	if err != nil {
		return nil, fmt.Errorf("read progression: %w", err)
	}

	doc := exportDocument{
		Exported:    uc.clock.Now(),
		Progression: prog,
		Tasks:       make([]taskYAML, 0, len(tasks)),
	}
	for _, t := range tasks {
		var parent string
		if t.ParentID != nil {
			parent = *t.ParentID
		}
		doc.Tasks = append(doc.Tasks, taskYAML{
			Created:           t.Created,
			ID:                t.ID,
			Parent:            parent,
			Title:             t.Title,
			Description:       t.Description,
			Location:          t.Location,
			DueDate:           t.DueDate.String(),
			DueTime:           t.DueTime,
			Priority:          string(t.Priority),
			Recurrence:        string(t.Recurrence),
			RecurrenceEndDate: t.RecurrenceEndDate.String(),
			Completed:         t.Completed,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return &ExportTasksOutput{Data: data, Count: len(doc.Tasks)}, nil
}
