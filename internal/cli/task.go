package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/model"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks within a project",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create [project-id] [title]",
	Short: "Create a new task at the end of its sibling group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetInt("priority")

		t, err := s.CreateTask(context.Background(), model.Task{
			ProjectID:   args[0],
			ParentID:    optStringFlag(cmd, "parent"),
			Title:       args[1],
			Description: optStringFlag(cmd, "description"),
			Status:      status,
			Priority:    priority,
			StartDate:   optStringFlag(cmd, "start"),
			EndDate:     optStringFlag(cmd, "end"),
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Created task %s: %s (index %d)\n", t.ID, t.Title, t.OrderIndex)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list [project-id]",
	Short: "List all tasks of a project, ordered by index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		tasks, err := s.ListTasksByProject(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return nil
		}
		for _, t := range tasks {
			indent := ""
			if t.ParentID != nil {
				indent = "  "
			}
			fmt.Printf("%3d %s%s  [%s] %d%%  %s\n",
				t.OrderIndex, indent, t.ID, t.Status, t.Progress, t.Title)
		}
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update [id] [title]",
	Short: "Update a task's fields (order index never changes)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetInt("priority")
		progress, _ := cmd.Flags().GetInt("progress")

		err = s.UpdateTask(context.Background(), model.Task{
			ID:          args[0],
			Title:       args[1],
			Description: optStringFlag(cmd, "description"),
			Status:      status,
			Priority:    priority,
			StartDate:   optStringFlag(cmd, "start"),
			EndDate:     optStringFlag(cmd, "end"),
			Progress:    progress,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated task %s\n", args[0])
		return nil
	},
}

var taskDatesCmd = &cobra.Command{
	Use:   "dates [id]",
	Short: "Update only a task's start and end dates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.UpdateTaskDates(context.Background(), args[0],
			optStringFlag(cmd, "start"), optStringFlag(cmd, "end"))
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated task %s dates\n", args[0])
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task and all of its subtasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteTask(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted task %s\n", args[0])
		return nil
	},
}

// TaskCmd returns the task command tree.
func TaskCmd() *cobra.Command { return taskCmd }

func init() {
	taskCreateCmd.Flags().String("parent", "", "Parent task ID (omit for a top-level task)")
	taskCreateCmd.Flags().StringP("description", "d", "", "Task description")
	taskCreateCmd.Flags().StringP("status", "s", model.TaskStatusPending, "Task status")
	taskCreateCmd.Flags().IntP("priority", "p", 0, "Task priority")
	taskCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	taskCreateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	taskUpdateCmd.Flags().StringP("description", "d", "", "Task description")
	taskUpdateCmd.Flags().StringP("status", "s", model.TaskStatusPending, "Task status")
	taskUpdateCmd.Flags().IntP("priority", "p", 0, "Task priority")
	taskUpdateCmd.Flags().Int("progress", 0, "Progress (0-100)")
	taskUpdateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	taskDatesCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	taskDatesCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDatesCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}
