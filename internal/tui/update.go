package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 3 * time.Second

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case MsgDashboardLoaded:
		m.dashboard = msg.Dashboard
		m.progression = msg.Progression
		m.loaded = true
		m.err = nil
		m.clampCursor()
		return m, nil

	case MsgTaskToggled:
		var cmds []tea.Cmd
		if msg.Result.Awarded {
			m.status = msg.Result.Message
			cmds = append(cmds, clearStatusAfter(statusTimeout))
		}
		cmds = append(cmds, m.loadDashboard())
		return m, tea.Batch(cmds...)

	case MsgStoreChanged:
		// Another process wrote the store: rebuild the whole view and go
		// back to waiting for the next change.
		return m, tea.Batch(m.loadDashboard(), m.waitForStoreChange())

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgClearStatus:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// updateKey handles key presses.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.ToggleShowAll):
		m.showCompleted = !m.showCompleted
		return m, m.loadDashboard()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadDashboard()
	}

	return m, nil
}

// clearStatusAfter clears the status message after the given delay.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearStatus{}
	})
}
