package tui

import (
	"fmt"
	"strings"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.loaded {
		return m.styles.App.Render("Loading…")
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.dashboard.Sections) == 0 {
		b.WriteString(m.styles.TaskMeta.Render("Nothing scheduled. Enjoy the quiet!"))
		b.WriteString("\n")
	} else {
		m.renderSections(&b)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.StatusMsg.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.styles.App.Render(b.String())
}

// renderHeader renders the title line with the level summary.
func (m *Model) renderHeader() string {
	title := m.styles.Header.Render("tarefa")
	info := ""
	if m.progression != nil {
		info = m.styles.HeaderInfo.Render(fmt.Sprintf(
			"  Level %d · %d XP · %d to next",
			m.progression.Level, m.progression.Progression.Experience, m.progression.Remaining))
	}
	return title + info
}

// renderSections renders each bucket with its priority groups.
func (m *Model) renderSections(b *strings.Builder) {
	index := 0
	for _, section := range m.dashboard.Sections {
		b.WriteString(m.styles.SectionTitle.Render(fmt.Sprintf("%s (%d)", section.Title, len(section.Tasks))))
		b.WriteString("\n")
		for _, group := range section.Groups {
			b.WriteString("  ")
			b.WriteString(m.styles.GroupLabel.Render(group.Priority.Display()))
			b.WriteString("\n")
			for _, task := range group.Tasks {
				b.WriteString(m.renderTask(task, index == m.cursor))
				b.WriteString("\n")
				index++
			}
		}
	}
}

// renderTask renders a single task row.
func (m *Model) renderTask(t *domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	icon := m.styles.PriorityStyle(t.Priority).Render(PriorityIcon(t.Priority))

	title := t.Title
	style := m.styles.TaskNormal
	switch {
	case selected:
		style = m.styles.TaskSelected
	case t.Completed:
		style = m.styles.TaskCompleted
	}

	meta := t.DueDate.String()
	if t.DueTime != "" {
		meta += " " + t.DueTime
	}
	if t.IsRecurring() {
		meta += " ↻"
	}

	return fmt.Sprintf("  %s%s %s %s  %s",
		cursor, check, icon, style.Render(title), m.styles.TaskMeta.Render(meta))
}

// renderFooter renders the key help line.
func (m *Model) renderFooter() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return m.styles.Footer.Render(strings.Join(parts, " · "))
}
