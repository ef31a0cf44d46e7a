package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the tarefa data store.

This command creates the data directory and an empty task store
(default: ~/.local/share/tarefa/tarefa.json). Running it again on an
existing store is harmless.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Store already initialized at %s\n", c.Paths.StorePath)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized tarefa store at %s\n", c.Paths.StorePath)
			return nil
		},
	}
}
