package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/cli"
	"github.com/maniksharma/vitalog/internal/config"
	"github.com/maniksharma/vitalog/internal/service"
	"github.com/maniksharma/vitalog/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return fmt.Errorf("resolving session store path: %w", err)
	}

	db, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer db.Close()

	sessions := store.NewSessionRepo(db)

	// The token source reads the stored session per request, so a login
	// in the same process is picked up without rebuilding the client.
	tokenSource := func() string {
		sess, err := sessions.Get(context.Background())
		if err != nil {
			return ""
		}
		return sess.Token
	}

	var opts []api.Option
	if cfg.LogCalls {
		opts = append(opts, api.WithObserver(api.NewLogObserver(os.Stderr)))
	}
	client := api.NewClient(cfg.BaseURL, cfg.TimeoutMs, tokenSource, opts...)

	app := &cli.App{
		Auth:      service.NewAuthService(client, sessions),
		Logs:      service.NewLogService(client),
		Dashboard: service.NewDashboardService(client),
		Meds:      service.NewMedicationService(client),
		Insights:  service.NewInsightService(client),
		Food:      service.NewFoodService(client),
	}

	// Forms and the TUI are only offered on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
