package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/maniksharma/vitalog/internal/service"
)

func newLogsCmd(app *App) *cobra.Command {
	var days int
	var table bool

	cmd := &cobra.Command{
		Use:   "logs KIND",
		Short: "Show the recent window for one log kind",
		Long: "Show the trailing window of entries for glucose, bp, food, activity " +
			"or water, or pass \"all\" for a combined list across every kind.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "all" {
				records, err := app.Logs.Recent(context.Background(), days)
				if err != nil {
					return err
				}
				fmt.Print(renderCombinedTable(records))
				return nil
			}

			kind := domain.LogKind(args[0])
			panel, err := app.Logs.Window(context.Background(), kind, days)
			if err != nil {
				return err
			}

			if table {
				fmt.Print(renderRecordTable(panel))
				return nil
			}
			fmt.Println(formatter.FormatPanel(panel, formatter.TermWidth()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", service.DefaultWindowDays, "Window size in days")
	cmd.Flags().BoolVar(&table, "table", false, "List raw entries instead of the chart view")

	return cmd
}

func renderCombinedTable(records []domain.LogRecord) string {
	if len(records) == 0 {
		return formatter.Dim("No entries in window.") + "\n"
	}

	headers := []string{"WHEN", "KIND", "VALUE", "NOTES"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatter.HumanTimestamp(r.CreatedAt),
			formatter.KindColor(r.Kind).Render(string(r.Kind)),
			formatter.Bold(recordValue(r)),
			formatter.Dim(formatter.TruncNote(r.Notes, 40)),
		})
	}

	return formatter.RenderTable(headers, rows)
}

func renderRecordTable(panel *service.KindPanel) string {
	if len(panel.Records) == 0 {
		return formatter.Dim("No entries in window.") + "\n"
	}

	headers := []string{"WHEN", "VALUE", "CONTEXT", "NOTES"}
	rows := make([][]string, 0, len(panel.Records))
	for _, r := range panel.Records {
		rows = append(rows, []string{
			formatter.HumanTimestamp(r.CreatedAt),
			formatter.Bold(recordValue(r)),
			formatter.Dim(r.ReadingContext),
			formatter.Dim(formatter.TruncNote(r.Notes, 40)),
		})
	}

	return formatter.RenderTable(headers, rows)
}

func recordValue(r domain.LogRecord) string {
	if r.Kind == domain.LogBP && r.ValueSecondary > 0 {
		return fmt.Sprintf("%s/%s mmHg",
			formatter.FormatValue(r.Value), formatter.FormatValue(r.ValueSecondary))
	}
	return formatter.FormatReading(r.Value, r.Unit)
}
