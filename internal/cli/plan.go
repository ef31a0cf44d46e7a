package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newPlanCommand creates the plan command.
func newPlanCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [date]",
		Short: "Show tasks occurring on a day",
		Long: `Show the tasks that occur on a given day, resolving repeat rules.

A task occurs on its due date, and additionally on the days its repeat
rule generates: 'daily' on weekdays, 'weekly' on the same weekday,
'monthly' on the same day of month. Rules stop after their end date.

Examples:
  # Today's plan
  tarefa plan

  # A specific day
  tarefa plan 2026-09-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.DayPlanInput
			if len(args) == 1 {
				date, err := domain.ParseDate(args[0])
				if err != nil {
					return err
				}
				in.Date = date
			}

			uc := c.DayPlanUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Plan for %s (%s)\n", out.Date, out.Date.Weekday())
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks.")
				return nil
			}
			printTaskTable(w, out.Tasks)
			return nil
		},
	}

	return cmd
}
