package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		Long: `Show completion statistics for a period.

The week period starts on Monday; the month period covers the trailing
month. Repeating tasks count once per occurrence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.StatsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StatsInput{
				Period: usecase.StatsPeriod(period),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Period: %s to %s\n", out.Start, out.End)
			_, _ = fmt.Fprintf(w, "Completed %d of %d (%.0f%%)\n\n", out.Completed, out.Total, out.CompletionRate*100)

			for _, day := range out.Daily {
				bar := strings.Repeat("#", day.Completed) + strings.Repeat(".", day.Total-day.Completed)
				_, _ = fmt.Fprintf(w, "%s  %-3s %s\n", day.Date, day.Date.Weekday().String()[:3], bar)
			}

			_, _ = fmt.Fprintln(w, "\nPending by priority:")
			for _, p := range domain.TierOrder() {
				_, _ = fmt.Fprintf(w, "  %-7s %d\n", p.Display(), out.PriorityCounts[p])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "week", "Reporting period: week, month")

	return cmd
}
