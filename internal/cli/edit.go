package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Location    string
		Due         string
		Time        string
		Priority    string
		Repeat      string
		Until       string
		Parent      string
		NoParent    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit fields of an existing task.

Only the flags you pass are changed. Task IDs may be abbreviated to a
unique prefix.

Examples:
  # Reword and bump the priority
  tarefa edit 4f8a21be --title "File taxes (state)" --priority urgent

  # Move a task under another task
  tarefa edit 4f8a21be --parent 9c01d3

  # Promote a subtask to a root task
  tarefa edit 4f8a21be --no-parent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(c, args[0])
			if err != nil {
				return err
			}

			in := usecase.EditTaskInput{ID: id, ClearParent: opts.NoParent}
			flags := cmd.Flags()
			if flags.Changed("title") {
				in.Title = &opts.Title
			}
			if flags.Changed("body") {
				in.Description = &opts.Description
			}
			if flags.Changed("location") {
				in.Location = &opts.Location
			}
			if flags.Changed("time") {
				in.DueTime = &opts.Time
			}
			if flags.Changed("priority") {
				p := domain.Priority(opts.Priority)
				in.Priority = &p
			}
			if flags.Changed("repeat") {
				r := domain.Recurrence(opts.Repeat)
				in.Recurrence = &r
			}
			if flags.Changed("due") {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
				in.DueDate = &due
			}
			if flags.Changed("until") {
				var until domain.Date
				if opts.Until != "" {
					until, err = domain.ParseDate(opts.Until)
					if err != nil {
						return err
					}
				}
				in.RecurrenceEndDate = &until
			}
			if flags.Changed("parent") {
				parent, err := resolveTaskID(c, opts.Parent)
				if err != nil {
					return err
				}
				in.ParentID = &parent
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Location")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Time of day (HH:MM, empty to clear)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: urgent, high, medium, low")
	cmd.Flags().StringVar(&opts.Repeat, "repeat", "", "Repeat rule: daily, weekly, monthly (empty to clear)")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Last date the repeat rule applies (empty to clear)")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "New parent task ID")
	cmd.Flags().BoolVar(&opts.NoParent, "no-parent", false, "Promote the task to a root task")

	return cmd
}
