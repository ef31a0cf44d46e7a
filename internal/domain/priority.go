package domain

// Priority represents the urgency tier of a task.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	// Legacy values (for backward compatibility with stores written by the
	// original pt-BR frontend)
	priorityUrgentLegacy Priority = "urgente"
	priorityHighLegacy   Priority = "alta"
	priorityMediumLegacy Priority = "media"
	priorityLowLegacy    Priority = "baixa"
)

// TierOrder returns the fixed iteration order for priority grouping,
// highest urgency first.
func TierOrder() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// Normalize maps legacy values onto their canonical tier. Unknown values are
// returned unchanged.
func (p Priority) Normalize() Priority {
	switch p {
	case priorityUrgentLegacy:
		return PriorityUrgent
	case priorityHighLegacy:
		return PriorityHigh
	case priorityMediumLegacy:
		return PriorityMedium
	case priorityLowLegacy:
		return PriorityLow
	default:
		return p
	}
}

// IsValid returns true if the priority is a known tier, canonical or legacy.
func (p Priority) IsValid() bool {
	switch p.Normalize() {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p.Normalize() {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}
