package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/model"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage daily todos",
}

// dateFlag reads --date, defaulting to today.
func dateFlag(cmd *cobra.Command) string {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return date
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a todo for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		todo, err := s.CreateDailyTodo(context.Background(), model.DailyTodo{
			TaskID: optStringFlag(cmd, "task"),
			Title:  args[0],
			Date:   dateFlag(cmd),
			Memo:   optStringFlag(cmd, "memo"),
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Added todo %s for %s: %s\n", todo.ID, todo.Date, todo.Title)
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's todos, incomplete first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		date := dateFlag(cmd)
		todos, err := s.ListTodosByDate(context.Background(), date)
		if err != nil {
			return err
		}
		if len(todos) == 0 {
			fmt.Printf("No todos for %s.\n", date)
			return nil
		}

		done := color.New(color.FgGreen).Sprint("[x]")
		open := "[ ]"
		for _, t := range todos {
			mark := open
			if t.Completed {
				mark = done
			}
			prefix := ""
			if t.ProjectName != nil {
				prefix = *t.ProjectName + ": "
			}
			fmt.Printf("%s %s  %s%s\n", mark, t.ID, prefix, t.Title)
			if t.Memo != nil && *t.Memo != "" {
				fmt.Printf("      %s\n", *t.Memo)
			}
		}
		return nil
	},
}

var todoToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Flip a todo between complete and incomplete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		completed, err := s.ToggleTodo(context.Background(), args[0])
		if err != nil {
			return err
		}
		if completed {
			fmt.Printf("✓ Todo %s marked complete\n", args[0])
		} else {
			fmt.Printf("✓ Todo %s marked incomplete\n", args[0])
		}
		return nil
	},
}

var todoMemoCmd = &cobra.Command{
	Use:   "memo [id] [memo]",
	Short: "Set or clear a todo's memo",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var memo *string
		if len(args) == 2 {
			memo = &args[1]
		}
		if err := s.UpdateTodoMemo(context.Background(), args[0], memo); err != nil {
			return err
		}
		fmt.Printf("✓ Updated todo %s memo\n", args[0])
		return nil
	},
}

var todoDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteTodo(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted todo %s\n", args[0])
		return nil
	},
}

var todoFromTaskCmd = &cobra.Command{
	Use:   "from-task [task-id]",
	Short: "Add a task to a day's todos, copying its current title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		todo, err := s.AddTaskToTodo(context.Background(), args[0], dateFlag(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added todo %s for %s: %s\n", todo.ID, todo.Date, todo.Title)
		return nil
	},
}

// TodoCmd returns the todo command tree.
func TodoCmd() *cobra.Command { return todoCmd }

func init() {
	todoAddCmd.Flags().String("date", "", "Day (YYYY-MM-DD, default today)")
	todoAddCmd.Flags().String("task", "", "Link to a task ID")
	todoAddCmd.Flags().StringP("memo", "m", "", "Memo text")

	todoListCmd.Flags().String("date", "", "Day (YYYY-MM-DD, default today)")

	todoFromTaskCmd.Flags().String("date", "", "Day (YYYY-MM-DD, default today)")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoToggleCmd)
	todoCmd.AddCommand(todoMemoCmd)
	todoCmd.AddCommand(todoDeleteCmd)
	todoCmd.AddCommand(todoFromTaskCmd)
}
