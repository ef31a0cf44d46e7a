package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(c, args[0])
			if err != nil {
				return err
			}

			uc := c.RemoveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RemoveTaskInput{ID: id})
			if err != nil {
				return err
			}

			if out.Removed > 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q and %d subtask(s)\n",
					out.Task.Title, out.Removed-1)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", out.Task.Title)
			return nil
		},
	}
}
