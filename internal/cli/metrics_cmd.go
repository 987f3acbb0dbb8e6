package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avermeer/lectio/internal/contract"
)

func newMetricsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Record daily study telemetry",
	}

	cmd.AddCommand(newMetricsLogCmd(app))

	return cmd
}

func newMetricsLogCmd(app *App) *cobra.Command {
	var date string
	var rating float64
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a productivity rating and study time for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.LogMetricsRequest{
				ProductivityRating: rating,
				StudyTimeMinutes:   minutes,
			}
			if cmd.Flags().Changed("date") {
				req.Date = date
			}

			if err := app.Metrics.Log(context.Background(), app.UserID, req); err != nil {
				return err
			}
			fmt.Println("Metrics recorded.")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, defaults to today)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Productivity rating from 1 to 5")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes studied")
	_ = cmd.MarkFlagRequired("rating")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
