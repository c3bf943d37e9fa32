package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/datefocus/core"
	"github.com/jask/datefocus/internal/config"
	"github.com/jask/datefocus/internal/database"
	"github.com/jask/datefocus/internal/database/repository"
	"github.com/jask/datefocus/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	enabled, err := cfg.Calendar.Policy()
	if err != nil {
		log.Fatalf("calendar: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	commits := repository.NewCommitRepo(db)

	value := cfg.Calendar.Value
	if value == "" {
		latest, err := commits.Latest(ctx)
		if err != nil {
			log.Printf("warn: ignoring stored value: %v", err)
		} else if latest != nil {
			value = latest.Value
		}
	}

	opts := core.Options{
		Value:         value,
		Locale:        cfg.Calendar.Locale,
		StartOfWeek:   cfg.Calendar.StartOfWeekOverride(),
		IsDateEnabled: enabled,
		Logger:        slog.Default(),
	}
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)

	// the alt screen owns the terminal; diagnostics go to a file when asked for
	if path := os.Getenv("DATEFOCUS_LOG"); path != "" {
		f, err := tea.LogToFile(path, "datefocus")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app := tui.New(ctx, opts, bindings, commits)
	app.SetPreferences(cfg)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
