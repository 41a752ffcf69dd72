package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/cli/formatter"
)

func newHbA1cCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hba1c",
		Short: "Track lab HbA1c results",
	}

	cmd.AddCommand(
		newHbA1cLogCmd(app),
		newHbA1cHistoryCmd(app),
	)

	return cmd
}

func newHbA1cLogCmd(app *App) *cobra.Command {
	var value float64
	var date, lab, notes string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a lab-tested HbA1c result (%)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == 0 && app.interactive() {
				var raw string
				form := themedForm(huh.NewGroup(
					numberInput("HbA1c (%)", "6.8", &raw),
					huh.NewInput().Title("Test Date (YYYY-MM-DD, empty = today)").Value(&date),
					huh.NewInput().Title("Lab Name").Value(&lab),
				))
				if err := form.Run(); err != nil {
					return err
				}
				value = parseFloatArg(raw)
			}

			logged, err := app.Logs.SubmitHbA1c(context.Background(), api.HbA1cEntry{
				Value:    value,
				TestDate: date,
				LabName:  lab,
				Notes:    notes,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatHbA1cLogged(logged))
			return nil
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "Result in percent, e.g. 6.8")
	cmd.Flags().StringVar(&date, "date", "", "Test date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&lab, "lab", "", "Lab name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newHbA1cHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent HbA1c results with the retesting reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			hist, err := app.Logs.HbA1cHistory(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHbA1cHistory(hist))
			return nil
		},
	}
}
