package main

import (
	"fmt"
	"os"

	"calcpad/internal/config"
	"calcpad/internal/observability"
	"calcpad/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	if err := observability.InitFileLogger(cfg.LogFile); err != nil {
		return err
	}
	defer observability.SyncLogger()

	observability.Logger.Info("terminal calculator started", zap.String("variant", string(cfg.Variant)))

	if _, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
