// Package cli wires the cobra command tree: authentication, log entry,
// dashboards and insight views. Commands fall back to interactive huh
// forms when required values are missing and stdin is a terminal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Auth      *service.AuthService
	Logs      *service.LogService
	Dashboard *service.DashboardService
	Meds      *service.MedicationService
	Insights  *service.InsightService
	Food      *service.FoodService

	// IsInteractive reports whether stdin is attached to a terminal;
	// forms and the TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "vitalog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "vitalog",
		Short:         "Chronic care logging and insights from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newLogCmd(app),
		newLogsCmd(app),
		newDashboardCmd(app),
		newMedsCmd(app),
		newHbA1cCmd(app),
		newPlanCmd(app),
		newTrendsCmd(app),
		newSummaryCmd(app),
		newRemindersCmd(app),
		newFoodCmd(app),
	)

	return root
}
