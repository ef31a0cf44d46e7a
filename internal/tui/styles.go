package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Priority colors
	Urgent lipgloss.Color
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Urgent: lipgloss.Color("#D63031"), // Red
	High:   lipgloss.Color("#E17055"), // Orange
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#74B9FF"), // Light blue
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	HeaderInfo lipgloss.Style

	SectionTitle lipgloss.Style
	GroupLabel   lipgloss.Style

	TaskNormal    lipgloss.Style
	TaskSelected  lipgloss.Style
	TaskCompleted lipgloss.Style
	TaskMeta      lipgloss.Style

	StatusMsg lipgloss.Style
	ErrorMsg  lipgloss.Style

	Footer lipgloss.Style

	PriorityUrgent lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
}

// NewStyles returns the styles for the TUI, with the section headers tinted
// in the configured accent color.
func NewStyles(accent string) Styles {
	primary := Colors.Primary
	if accent != "" {
		primary = lipgloss.Color(accent)
	}
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginTop(1),

		GroupLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TaskCompleted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		PriorityUrgent: lipgloss.NewStyle().
			Foreground(Colors.Urgent).
			Bold(true),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),
	}
}

// PriorityStyle returns the style for a given priority tier.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p.Normalize() {
	case domain.PriorityUrgent:
		return s.PriorityUrgent
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityMedium
	}
}

// PriorityIcon returns an icon for a given priority tier.
func PriorityIcon(p domain.Priority) string {
	switch p.Normalize() {
	case domain.PriorityUrgent:
		return "!!"
	case domain.PriorityHigh:
		return "! "
	case domain.PriorityLow:
		return "· "
	default:
		return "- "
	}
}
