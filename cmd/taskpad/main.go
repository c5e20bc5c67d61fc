package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/skarun/taskpad/internal/assist"
	"github.com/skarun/taskpad/internal/config"
	"github.com/skarun/taskpad/internal/storage"
	"github.com/skarun/taskpad/internal/update"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskpad: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg.LogFile)
	defer closeLog()

	repo := storage.NewFileRepository(cfg.DataFile, logger)
	client := assist.NewClient(assist.Config{
		APIKey:      cfg.Assist.APIKey,
		BaseURL:     cfg.Assist.BaseURL,
		Model:       cfg.Assist.Model,
		MaxTokens:   cfg.Assist.MaxTokens,
		Temperature: cfg.Assist.Temperature,
		Timeout:     time.Duration(cfg.Assist.TimeoutSeconds) * time.Second,
	}, logger)

	m := update.NewModel(cfg, repo, update.WrapAssist(client), logger)
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskpad failed: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the configured log file; the terminal belongs to the
// TUI. Logging failures fall back to a discard logger rather than killing
// the app.
func newLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.New(f)
	logger.SetReportTimestamp(true)
	return logger, func() { _ = f.Close() }
}
