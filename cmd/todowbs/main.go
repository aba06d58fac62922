package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todowbs",
		Short: "todowbs - project, WBS task, and daily todo tracker",
		Long: `todowbs tracks projects, their hierarchical task breakdown, and
date-scoped daily todos, and renders a markdown daily report from them.`,
	}

	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "",
		"Path to config file (default ~/.config/todowbs/config.yaml)")

	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.TodoCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
