package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/service"
)

func newDashboardCmd(app *App) *cobra.Command {
	var days int
	var static bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Live dashboard of all your health data",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal the TUI cannot run; fall back to a
			// single static render for scripts and pipes.
			if static || !app.interactive() {
				dash := app.Dashboard.Load(context.Background(), days)
				fmt.Print(formatter.FormatDashboardStatic(dash, formatter.TermWidth()))
				return nil
			}

			model := newDashboardModel(app, days)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", service.DefaultWindowDays, "Window size in days")
	cmd.Flags().BoolVar(&static, "static", false, "Print once instead of the interactive view")

	return cmd
}
