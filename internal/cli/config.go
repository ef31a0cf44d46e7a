package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration.

Settings are read from config.toml in the config directory
(default: ~/.config/tarefa). Recognized settings:

  [store]
  path = "/path/to/tarefa.json"   # Store location override

  [log]
  level = "info"                  # debug, info, warn, error

  [ui]
  show_completed = false          # Show completed tasks by default
  accent = "#6C5CE7"              # Dashboard accent color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			cfg := c.Config
			_, _ = fmt.Fprintf(w, "store.path         = %s\n", c.Paths.StorePath)
			_, _ = fmt.Fprintf(w, "log.level          = %s\n", cfg.Log.Level)
			_, _ = fmt.Fprintf(w, "log.file           = %s\n", c.Logger.Path())
			_, _ = fmt.Fprintf(w, "ui.show_completed  = %t\n", cfg.UI.ShowCompleted)
			_, _ = fmt.Fprintf(w, "ui.accent          = %s\n", cfg.UI.Accent)
			for _, warning := range cfg.Warnings {
				_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
			}
			return nil
		},
	}
}
