package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avermeer/lectio/internal/cli/formatter"
	"github.com/avermeer/lectio/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and apply study plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var from, to string
	var hours float64
	var weekends, noDuePriority, apply bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a study plan for a date window",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.GeneratePlanRequest{
				StartDate: from,
				EndDate:   to,
			}
			if cmd.Flags().Changed("hours") {
				req.DailyStudyHours = &hours
			}
			if cmd.Flags().Changed("weekends") {
				req.IncludeWeekends = &weekends
			}
			if cmd.Flags().Changed("no-due-priority") {
				due := !noDuePriority
				req.PrioritizeDueTasks = &due
			}

			ctx := context.Background()
			plan, err := app.Plans.Generate(ctx, app.UserID, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatPlan(plan))

			if !apply {
				return nil
			}

			sessions := make([]contract.ApplySession, 0)
			for _, day := range plan.DailyPlans {
				for _, s := range day.Sessions {
					sessions = append(sessions, contract.ApplySession{
						Title:      s.Title,
						StartTime:  s.StartTime,
						EndTime:    s.EndTime,
						WorkItemID: s.WorkItemID,
					})
				}
			}
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("Nothing to apply."))
				return nil
			}

			events, err := app.Applies.Apply(ctx, app.UserID, contract.ApplyPlanRequest{
				IdempotencyKey: uuid.NewString(),
				Sessions:       sessions,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatApplied(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", contract.DefaultDailyStudyHours, "Daily study hours")
	cmd.Flags().BoolVar(&weekends, "weekends", false, "Schedule on weekends")
	cmd.Flags().BoolVar(&noDuePriority, "no-due-priority", false, "Order by priority only, ignoring due dates")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the generated sessions as calendar events")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
