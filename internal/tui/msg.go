package tui

import (
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgDashboardLoaded is sent when the dashboard view has been rebuilt from
// the store.
type MsgDashboardLoaded struct {
	Dashboard   *usecase.DashboardOutput
	Progression *usecase.ShowProgressOutput
}

func (MsgDashboardLoaded) sealed() {}

// MsgTaskToggled is sent when a task's completion was toggled.
type MsgTaskToggled struct {
	Result *usecase.ToggleTaskOutput
}

func (MsgTaskToggled) sealed() {}

// MsgStoreChanged is sent when another process modified the store file.
// The handler re-fetches everything; repeated notifications converge.
type MsgStoreChanged struct{}

func (MsgStoreChanged) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearStatus is sent to clear the transient status message.
type MsgClearStatus struct{}

func (MsgClearStatus) sealed() {}
