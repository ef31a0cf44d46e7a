// Package cli provides the command-line interface for tarefa.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/tui"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tarefa.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tarefa",
		Short: "Task planner with recurrence, priorities and progression",
		Long: `tarefa is a task planner for the terminal.

Tasks carry a due date, a priority tier and an optional repeat rule
(daily on weekdays, weekly, monthly). Subtasks nest under a parent
task. Completing a task earns experience points; every 100 points is
a level.

Running tarefa without a subcommand opens the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	// Views
	todayCmd := newTodayCommand(c)
	todayCmd.GroupID = groupView

	planCmd := newPlanCommand(c)
	planCmd.GroupID = groupView

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupView

	levelCmd := newLevelCommand(c)
	levelCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	root.AddCommand(
		initCmd,
		configCmd,
		addCmd,
		listCmd,
		editCmd,
		rmCmd,
		doneCmd,
		exportCmd,
		importCmd,
		todayCmd,
		planCmd,
		statsCmd,
		levelCmd,
		tuiCmd,
	)

	return root
}

// launchTUI starts the interactive dashboard.
func launchTUI(c *app.Container) error {
	model, err := tui.New(c)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
