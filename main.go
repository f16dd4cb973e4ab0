package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmorgan81/imagegen/internal/config"
	"github.com/dmorgan81/imagegen/internal/inject"
	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/dmorgan81/imagegen/internal/view"
	"github.com/samber/do"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	logger := log.NewWithOptions(f, cfg.LogFormat, log.ParseLevel(cfg.LogLevel))
	ctx := log.NewContext(context.Background(), logger)

	injector := inject.Setup(ctx, cfg)
	defer func() {
		_ = injector.Shutdown()
	}()

	model, err := do.Invoke[view.Model](injector)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return fmt.Errorf("startup failed: %w", err)
	}

	logger.Info("starting", "url", cfg.InferenceURL, "theme", cfg.Theme)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
