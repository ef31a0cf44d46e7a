package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Location    string
		Due         string
		Time        string
		Priority    string
		Repeat      string
		Until       string
		Parent      string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task.

The due date defaults to today. Priority is one of urgent, high,
medium, low (default: medium). A repeat rule makes the task occur on
multiple days: 'daily' repeats on weekdays only, 'weekly' on the same
weekday as the due date, 'monthly' on the same day of month (months
without that day are skipped).

Examples:
  # A task due today
  tarefa add "Buy groceries"

  # An urgent task due on a specific date
  tarefa add "File taxes" --due 2026-04-30 --priority urgent

  # A weekday standup until the end of the quarter
  tarefa add "Standup" --repeat daily --time 09:30 --until 2026-09-30

  # A subtask
  tarefa add "Write tests" --parent 4f8a21be-...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.AddTaskInput{
				Title:       args[0],
				Description: opts.Description,
				Location:    opts.Location,
				DueTime:     opts.Time,
				Priority:    domain.Priority(opts.Priority),
				Recurrence:  domain.Recurrence(opts.Repeat),
			}
			if opts.Due != "" {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
				in.DueDate = due
			}
			if opts.Until != "" {
				until, err := domain.ParseDate(opts.Until)
				if err != nil {
					return err
				}
				in.RecurrenceEndDate = until
			}
			if opts.Parent != "" {
				parent, err := resolveTaskID(c, opts.Parent)
				if err != nil {
					return err
				}
				in.ParentID = &parent
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s, due %s)\n",
				shortID(out.Task.ID), out.Task.Priority.Display(), out.Task.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Location")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (yyyy-mm-dd, default: today)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Time of day (HH:MM)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: urgent, high, medium, low")
	cmd.Flags().StringVar(&opts.Repeat, "repeat", "", "Repeat rule: daily, weekly, monthly")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Last date the repeat rule applies (yyyy-mm-dd)")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Parent task ID (creates a subtask)")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Query  string
		Parent string
		All    bool
		Flat   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks ordered by due date.

By default completed tasks are hidden and subtasks are shown indented
under their parent. A subtask whose parent no longer exists is not
shown at all.

Examples:
  # Open tasks as a tree
  tarefa list

  # Include completed tasks
  tarefa list --all

  # Search title and description
  tarefa list --query groceries`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ListTasksInput{
				Query:            opts.Query,
				IncludeCompleted: opts.All,
				Tree:             !opts.Flat,
			}
			if opts.Parent != "" {
				in.ParentID = &opts.Parent
				in.Tree = false
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Filter by title or description")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Only subtasks of this task")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")
	cmd.Flags().BoolVar(&opts.Flat, "flat", false, "Do not nest subtasks")

	return cmd
}

// printTaskTable renders tasks (and their subtasks, indented) as a table.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATE\tDUE\tPRIORITY\tREPEAT\tTITLE")
	var print func(tasks []*domain.Task, depth int)
	print = func(tasks []*domain.Task, depth int) {
		for _, t := range tasks {
			state := " "
			if t.Completed {
				state = "x"
			}
			_, _ = fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\t%s\t%s%s\n",
				shortID(t.ID), state, formatDue(t), t.Priority.Display(),
				t.Recurrence.Display(), strings.Repeat("  ", depth), t.Title)
			print(t.Subtasks, depth+1)
		}
	}
	print(tasks, 0)
	_ = tw.Flush()
}

func formatDue(t *domain.Task) string {
	if t.DueTime != "" {
		return fmt.Sprintf("%s %s", t.DueDate, t.DueTime)
	}
	return t.DueDate.String()
}

// shortID returns the display form of a task ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
