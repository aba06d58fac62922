package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.CreateProject(context.Background(), model.Project{
			Name:        args[0],
			Description: optStringFlag(cmd, "description"),
			StartDate:   optStringFlag(cmd, "start"),
			EndDate:     optStringFlag(cmd, "end"),
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Created project %s: %s\n", p.ID, p.Name)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		projects, err := s.ListProjects(context.Background())
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects.")
			return nil
		}
		for _, p := range projects {
			fmt.Printf("%s  %s", p.ID, p.Name)
			if p.StartDate != nil || p.EndDate != nil {
				fmt.Printf("  (%s → %s)", deref(p.StartDate), deref(p.EndDate))
			}
			fmt.Println()
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.GetProject(context.Background(), args[0])
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Printf("No project with id %s\n", args[0])
			return nil
		}

		fmt.Printf("Project %s\n", p.ID)
		fmt.Printf("  Name:        %s\n", p.Name)
		fmt.Printf("  Description: %s\n", deref(p.Description))
		fmt.Printf("  Start:       %s\n", deref(p.StartDate))
		fmt.Printf("  End:         %s\n", deref(p.EndDate))
		fmt.Printf("  Created:     %s\n", p.CreatedAt)
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a project's name, description, and dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.UpdateProject(context.Background(), model.Project{
			ID:          args[0],
			Name:        args[1],
			Description: optStringFlag(cmd, "description"),
			StartDate:   optStringFlag(cmd, "start"),
			EndDate:     optStringFlag(cmd, "end"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated project %s\n", args[0])
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project and all of its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteProject(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted project %s\n", args[0])
		return nil
	},
}

// ProjectCmd returns the project command tree.
func ProjectCmd() *cobra.Command { return projectCmd }

func init() {
	projectCreateCmd.Flags().StringP("description", "d", "", "Project description")
	projectCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectCreateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	projectUpdateCmd.Flags().StringP("description", "d", "", "Project description")
	projectUpdateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectUpdateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
