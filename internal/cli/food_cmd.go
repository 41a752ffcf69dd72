package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
)

func newFoodCmd(app *App) *cobra.Command {
	var meal, quantity, image string

	cmd := &cobra.Command{
		Use:   "food [DESCRIPTION]",
		Short: "Analyze a meal by description or photo",
		Long: "Sends a meal description (or a photo with --image) to the nutrition " +
			"analyzer. The analyzed meal is also recorded as a food log entry.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			description := strings.Join(args, " ")

			if image != "" {
				analysis, err := app.Food.AnalyzeImage(ctx, image, domain.MealType(meal), quantity)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatFoodAnalysis(analysis))
				return nil
			}

			if description == "" && app.interactive() {
				form := themedForm(huh.NewGroup(
					huh.NewInput().Title("Describe the meal").
						Placeholder("2 rotis with dal and salad").
						Value(&description).Validate(validateNonEmpty),
					huh.NewInput().Title("Quantity").Placeholder("1 serving").Value(&quantity),
					enumSelect("Meal", mealTypeValues, &meal),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			analysis, err := app.Food.Analyze(ctx, description, quantity, domain.MealType(meal))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatFoodAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().StringVar(&meal, "meal", string(domain.MealSnack), "Meal: breakfast, lunch, dinner or snack")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Portion size, e.g. '1 bowl'")
	cmd.Flags().StringVar(&image, "image", "", "Path to a meal photo to analyze instead")

	return cmd
}
