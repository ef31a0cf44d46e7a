package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newTodayCommand creates the today command.
func newTodayCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Query string
		All   bool
	}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the dashboard",
		Long: `Show tasks bucketed by due date relative to today.

Sections appear in a fixed order: Overdue, Today, Tomorrow, This Week
(up to 7 days out), Later. Within a section tasks are grouped by
priority, urgent first. Completed tasks whose date has passed are not
shown, even with --all.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.DashboardUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DashboardInput{
				Query:            opts.Query,
				IncludeCompleted: opts.All || c.Config.UI.ShowCompleted,
			})
			if err != nil {
				return err
			}

			if len(out.Sections) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing scheduled. Enjoy the quiet!")
				return nil
			}
			printDashboard(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Filter by title or description")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")

	return cmd
}

// printDashboard renders the bucketed sections with their priority groups.
func printDashboard(w io.Writer, out *usecase.DashboardOutput) {
	for i, section := range out.Sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (%d)\n", section.Title, len(section.Tasks))
		for _, group := range section.Groups {
			_, _ = fmt.Fprintf(w, "  %s:\n", group.Priority.Display())
			for _, t := range group.Tasks {
				state := " "
				if t.Completed {
					state = "x"
				}
				_, _ = fmt.Fprintf(w, "    [%s] %s  %s (%s)\n", state, shortID(t.ID), t.Title, formatDue(t))
			}
		}
	}
}
