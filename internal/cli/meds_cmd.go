package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
)

func newMedsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meds",
		Short: "Manage medications and dose intake",
	}

	cmd.AddCommand(
		newMedsListCmd(app),
		newMedsAddCmd(app),
		newMedsRemoveCmd(app),
		newMedsTakeCmd(app),
	)

	return cmd
}

func newMedsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medications with today's dose status",
		RunE: func(cmd *cobra.Command, args []string) error {
			meds, err := app.Meds.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMedications(meds, ""))
			return nil
		},
	}
}

func newMedsAddCmd(app *App) *cobra.Command {
	var name, dosage, frequency, times, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medication with its daily schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				form := themedForm(huh.NewGroup(
					huh.NewInput().Title("Medication Name").Value(&name).Validate(validateNonEmpty),
					huh.NewInput().Title("Dosage").Placeholder("500mg").Value(&dosage),
					enumSelect("Frequency", frequencyValues, &frequency),
					huh.NewInput().Title("Times (HH:MM, comma-separated)").
						Placeholder("08:00, 20:00").Value(&times).Validate(validateClockTimes),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			created, err := app.Meds.Add(context.Background(), api.MedicationCreate{
				Name:       name,
				Dosage:     dosage,
				Frequency:  domain.Frequency(frequency),
				TimesOfDay: splitTimes(times),
				Notes:      notes,
			})
			if err != nil {
				return err
			}

			msg := created.Message
			if msg == "" {
				msg = fmt.Sprintf("Added %s (#%d)", name, created.ID)
			}
			fmt.Println(formatter.StyleGreen.Render("✔ ") + msg)
			if created.Warning != "" {
				fmt.Println(formatter.StyleYellow.Render("⚠ " + created.Warning))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Medication name")
	cmd.Flags().StringVar(&dosage, "dosage", "", "Dosage, e.g. 500mg")
	cmd.Flags().StringVar(&frequency, "frequency", string(domain.FrequencyDaily), "daily, twice_daily, weekly or as_needed")
	cmd.Flags().StringVar(&times, "times", "", "Scheduled times, comma-separated HH:MM")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newMedsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("medication ID must be a number, got %q", args[0])
			}
			if err := app.Meds.Remove(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed medication %d\n", id)
			return nil
		},
	}
}

func newMedsTakeCmd(app *App) *cobra.Command {
	var at string
	var skipped bool

	cmd := &cobra.Command{
		Use:   "take ID",
		Short: "Mark a scheduled dose as taken today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("medication ID must be a number, got %q", args[0])
			}

			if err := app.Meds.MarkDose(context.Background(), id, at, !skipped); err != nil {
				return err
			}

			if skipped {
				fmt.Println(formatter.Dim("Dose marked as skipped."))
			} else {
				fmt.Println(formatter.StyleGreen.Render("✔ Dose marked as taken."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Scheduled time of the dose, HH:MM")
	cmd.Flags().BoolVar(&skipped, "skipped", false, "Mark the dose as skipped instead of taken")

	return cmd
}

func splitTimes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
