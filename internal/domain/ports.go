package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized checks if the store exists.
	IsInitialized() bool
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// List retrieves tasks matching the filter, ordered by due date ascending.
	List(filter TaskFilter) ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id string) error
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	ParentID *string // nil = all tasks, set = only children of this parent
}

// ProgressionRepository manages the per-user experience counter.
type ProgressionRepository interface {
	// GetProgression retrieves the current progression state.
	GetProgression() (Progression, error)

	// AddExperience adds points to the counter and returns the new state.
	// The completion write and this increment are two separate operations
	// with no transaction wrapping them.
	AddExperience(points int) (Progression, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + config file).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig // [store] settings
	Log      LogConfig   // [log] settings
	UI       UIConfig    // [ui] settings
	Warnings []string    // Unknown keys found while parsing
}

// StoreConfig holds store settings from the [store] section.
type StoreConfig struct {
	Path string // Path to the store file (default: <data dir>/tarefa.json)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// UIConfig holds display settings from the [ui] section.
type UIConfig struct {
	ShowCompleted bool   // Show completed tasks by default
	Accent        string // Accent color for the TUI (hex)
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{Accent: "#6C5CE7"},
	}
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
