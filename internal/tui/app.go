// Package tui implements the interactive dashboard.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/infra/watch"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	container *app.Container
	watcher   *watch.Watcher
	cancel    context.CancelFunc

	keys   KeyMap
	styles Styles

	dashboard   *usecase.DashboardOutput
	progression *usecase.ShowProgressOutput

	status string
	err    error

	cursor        int
	width         int
	height        int
	showCompleted bool
	loaded        bool
}

// New creates the dashboard model. The store watcher is optional; without a
// store path the dashboard still works, it just doesn't react to external
// changes.
func New(c *app.Container) (*Model, error) {
	m := &Model{
		container:     c,
		keys:          DefaultKeyMap(),
		styles:        NewStyles(c.Config.UI.Accent),
		showCompleted: c.Config.UI.ShowCompleted,
	}

	if c.Paths.StorePath != "" {
		w, err := watch.New(c.Paths.StorePath)
		if err != nil {
			// Degrade to manual refresh.
			c.Logger.Warn("tui", "store watcher unavailable: "+err.Error())
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			m.watcher = w
			m.cancel = cancel
			go w.Run(ctx)
		}
	}

	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDashboard()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForStoreChange())
	}
	return tea.Batch(cmds...)
}

// loadDashboard re-fetches the dashboard and progression from the store.
func (m *Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		dash, err := m.container.DashboardUseCase().Execute(ctx, usecase.DashboardInput{
			IncludeCompleted: m.showCompleted,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		prog, err := m.container.ShowProgressUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDashboardLoaded{Dashboard: dash, Progression: prog}
	}
}

// toggleSelected flips completion of the task under the cursor.
func (m *Model) toggleSelected() tea.Cmd {
	task := m.selectedTask()
	if task == nil {
		return nil
	}
	id := task.ID
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Result: out}
	}
}

// waitForStoreChange blocks on the watcher's signal channel.
func (m *Model) waitForStoreChange() tea.Cmd {
	return func() tea.Msg {
		_, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return MsgStoreChanged{}
	}
}

// visibleTasks flattens the dashboard sections in display order.
func (m *Model) visibleTasks() []*domain.Task {
	if m.dashboard == nil {
		return nil
	}
	var tasks []*domain.Task
	for _, section := range m.dashboard.Sections {
		for _, group := range section.Groups {
			tasks = append(tasks, group.Tasks...)
		}
	}
	return tasks
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *domain.Task {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

// clampCursor keeps the cursor inside the visible task range after reloads.
func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Close stops the store watcher.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
