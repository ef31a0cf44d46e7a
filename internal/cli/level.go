package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
)

// newLevelCommand creates the level command.
func newLevelCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "level",
		Short: "Show experience and level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowProgressUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Level %d (%d XP)\n", out.Level, out.Progression.Experience)
			_, _ = fmt.Fprintf(w, "[%s] %d/100, %d XP to next level\n",
				progressBar(out.IntoLevel, 20), out.IntoLevel, out.Remaining)
			return nil
		},
	}
}

// progressBar renders n/100 as a bar of the given width.
func progressBar(n, width int) string {
	filled := n * width / 100
	return strings.Repeat("=", filled) + strings.Repeat("-", width-filled)
}
