package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show today's care plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Insights.CarePlan(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCarePlan(plan))
			return nil
		},
	}
}

func newTrendsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends [glucose|bp]",
		Short: "Show trend analysis for your readings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				kind := domain.LogKind(args[0])
				report, err := app.Insights.TrendFor(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatTrendReport(kind, report))
				return nil
			}

			bundle, err := app.Insights.Trends(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTrendBundle(bundle))
			return nil
		},
	}

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var adjustments bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the scored weekly health summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if adjustments {
				adj, err := app.Insights.WeeklyAdjustments(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatAdjustments(adj))
				return nil
			}

			sum, err := app.Insights.WeeklySummary(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeeklySummary(sum))
			return nil
		},
	}

	cmd.Flags().BoolVar(&adjustments, "adjustments", false, "Show weekly plan adjustments instead")

	return cmd
}

func newRemindersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "Show personalized care reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Insights.Reminders(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReminders(r))
			return nil
		},
	}
}
