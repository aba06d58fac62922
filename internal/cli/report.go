package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [date]",
	Short: "Render the daily report for a day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		date := time.Now().Format("2006-01-02")
		if len(args) == 1 {
			date = args[0]
		}
		memo, _ := cmd.Flags().GetString("memo")

		doc, err := report.NewGenerator(s).DailyReport(context.Background(), date, memo)
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	},
}

// ReportCmd returns the report command.
func ReportCmd() *cobra.Command { return reportCmd }

func init() {
	reportCmd.Flags().StringP("memo", "m", "", "Free-form memo appended to the report")
}
