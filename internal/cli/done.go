package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Long: `Toggle a task between complete and incomplete.

Completing a task awards 10 experience points. Toggling it back to
incomplete keeps the points; experience only ever grows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(c, args[0])
			if err != nil {
				return err
			}

			uc := c.ToggleTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{ID: id})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Awarded {
				_, _ = fmt.Fprintf(w, "%s\n", out.Message)
				_, _ = fmt.Fprintf(w, "Completed %q (+%d XP, level %d, %d XP to next)\n",
					out.Task.Title, out.Points, out.Progression.Level(), out.Progression.Remaining())
				return nil
			}
			_, _ = fmt.Fprintf(w, "Reopened %q\n", out.Task.Title)
			return nil
		},
	}
}
