package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/app"
	"github.com/prajwalk/mathsprint/internal/selfupdate"
	"github.com/prajwalk/mathsprint/internal/settings"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts, err := buildOptions(st)
	if err != nil {
		return err
	}
	return app.Run(opts)
}

// buildOptions wires the repos and services behind the TUI.
func buildOptions(st *store.Store) (app.Options, error) {
	eventRepo, err := st.EventRepo()
	if err != nil {
		return app.Options{}, fmt.Errorf("event repo: %w", err)
	}

	badges, err := achievements.NewService(context.Background(), eventRepo)
	if err != nil {
		return app.Options{}, fmt.Errorf("achievements: %w", err)
	}

	cfg := settings.Default()
	if path, err := settings.DefaultPath(); err == nil {
		loaded, err := settings.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid settings file, using defaults:", err)
		} else {
			cfg = loaded
		}
	}

	return app.Options{
		EventRepo:     eventRepo,
		Analyzer:      analytics.NewAnalyzer(eventRepo),
		Coach:         analytics.NewCoach(eventRepo, nil),
		Achievements:  badges,
		Settings:      cfg,
		UpdateChecker: selfupdate.NewChecker(),
		Version:       version,
	}, nil
}
