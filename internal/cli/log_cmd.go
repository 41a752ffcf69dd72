package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a new health entry",
	}

	cmd.AddCommand(
		newLogGlucoseCmd(app),
		newLogBPCmd(app),
		newLogFoodCmd(app),
		newLogActivityCmd(app),
		newLogWaterCmd(app),
	)

	return cmd
}

// printCreated prints the server acknowledgment, surfacing any clinical
// alert prominently.
func printCreated(created *api.LogCreated) {
	msg := created.Message
	if msg == "" {
		msg = fmt.Sprintf("Logged entry #%d", created.ID)
	}
	fmt.Println(formatter.StyleGreen.Render("✔ ") + msg)
	if created.Alert != "" {
		fmt.Println(formatter.AlertBanner(created.Alert))
	}
}

func newLogGlucoseCmd(app *App) *cobra.Command {
	var value float64
	var readingType, notes string

	cmd := &cobra.Command{
		Use:   "glucose",
		Short: "Record a blood glucose reading (mg/dL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == 0 && app.interactive() {
				var raw string
				form := themedForm(huh.NewGroup(
					numberInput("Glucose (mg/dL)", "110", &raw),
					enumSelect("Reading Context", readingTypeValues, &readingType),
					huh.NewInput().Title("Notes (optional)").Value(&notes),
				))
				if err := form.Run(); err != nil {
					return err
				}
				value = parseFloatArg(raw)
			}

			created, err := app.Logs.SubmitGlucose(context.Background(), api.GlucoseEntry{
				Value:       value,
				ReadingType: domain.ReadingType(readingType),
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			printCreated(created)
			return nil
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "Reading in mg/dL")
	cmd.Flags().StringVar(&readingType, "type", string(domain.ReadingRandom), "Reading context: fasting, after_meal or random")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newLogBPCmd(app *App) *cobra.Command {
	var systolic, diastolic float64
	var pulse int
	var contextFlag, notes string

	cmd := &cobra.Command{
		Use:   "bp",
		Short: "Record a blood pressure reading (mmHg)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (systolic == 0 || diastolic == 0) && app.interactive() {
				var rawSys, rawDia string
				form := themedForm(huh.NewGroup(
					numberInput("Systolic (mmHg)", "120", &rawSys),
					numberInput("Diastolic (mmHg)", "80", &rawDia),
					huh.NewInput().Title("Notes (optional)").Value(&notes),
				))
				if err := form.Run(); err != nil {
					return err
				}
				systolic = parseFloatArg(rawSys)
				diastolic = parseFloatArg(rawDia)
			}

			created, err := app.Logs.SubmitBP(context.Background(), api.BPEntry{
				Systolic:       systolic,
				Diastolic:      diastolic,
				Pulse:          pulse,
				ReadingContext: contextFlag,
				Notes:          notes,
			})
			if err != nil {
				return err
			}
			printCreated(created)
			return nil
		},
	}

	cmd.Flags().Float64Var(&systolic, "systolic", 0, "Systolic pressure in mmHg")
	cmd.Flags().Float64Var(&diastolic, "diastolic", 0, "Diastolic pressure in mmHg")
	cmd.Flags().IntVar(&pulse, "pulse", 0, "Pulse in bpm")
	cmd.Flags().StringVar(&contextFlag, "context", "", "Reading context, e.g. morning")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newLogFoodCmd(app *App) *cobra.Command {
	var calories float64
	var mealType, description, notes string

	cmd := &cobra.Command{
		Use:   "food",
		Short: "Record a meal by calories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if calories == 0 && app.interactive() {
				var raw string
				form := themedForm(huh.NewGroup(
					huh.NewInput().Title("What did you eat?").Value(&description),
					numberInput("Calories (kcal)", "450", &raw),
					enumSelect("Meal", mealTypeValues, &mealType),
				))
				if err := form.Run(); err != nil {
					return err
				}
				calories = parseFloatArg(raw)
			}

			created, err := app.Logs.SubmitFood(context.Background(), api.FoodEntry{
				Calories:    calories,
				MealType:    domain.MealType(mealType),
				Description: description,
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			printCreated(created)
			return nil
		},
	}

	cmd.Flags().Float64Var(&calories, "calories", 0, "Calories in kcal")
	cmd.Flags().StringVar(&mealType, "meal", string(domain.MealSnack), "Meal: breakfast, lunch, dinner or snack")
	cmd.Flags().StringVar(&description, "desc", "", "What was eaten")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newLogActivityCmd(app *App) *cobra.Command {
	var minutes float64
	var activityType, intensity, notes string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Record physical activity in minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes == 0 && app.interactive() {
				var raw string
				form := themedForm(huh.NewGroup(
					enumSelect("Activity", activityTypeValues, &activityType),
					numberInput("Duration (minutes)", "30", &raw),
					enumSelect("Intensity", intensityValues, &intensity),
				))
				if err := form.Run(); err != nil {
					return err
				}
				minutes = parseFloatArg(raw)
			}

			created, err := app.Logs.SubmitActivity(context.Background(), api.ActivityEntry{
				DurationMinutes: minutes,
				ActivityType:    domain.ActivityType(activityType),
				Intensity:       domain.Intensity(intensity),
				Notes:           notes,
			})
			if err != nil {
				return err
			}
			printCreated(created)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().StringVar(&activityType, "type", string(domain.ActivityWalking), "Activity type")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Intensity: light, moderate or vigorous")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newLogWaterCmd(app *App) *cobra.Command {
	var ml int

	cmd := &cobra.Command{
		Use:   "water [ML]",
		Short: "Record water intake in millilitres",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				ml = int(parseFloatArg(args[0]))
			}
			if ml == 0 {
				// One glass by default: quick logging should stay quick.
				ml = 250
			}

			created, err := app.Logs.SubmitWater(context.Background(), api.WaterEntry{AmountML: ml})
			if err != nil {
				return err
			}
			printCreated(created)
			return nil
		},
	}

	cmd.Flags().IntVar(&ml, "ml", 0, "Amount in millilitres (default one 250ml glass)")

	return cmd
}
