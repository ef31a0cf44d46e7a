package cli

import (
	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
)

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive dashboard.

The dashboard shows tasks bucketed by due date and refreshes itself
when another process changes the store. Keys: up/down to move, space
to toggle completion, a to show completed tasks, r to refresh, q to
quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
