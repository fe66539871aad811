package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/selimc/focusly/internal/config"
	"github.com/selimc/focusly/internal/export"
	"github.com/selimc/focusly/internal/store"
	"github.com/selimc/focusly/internal/tui"
)

var cli struct {
	DB string `help:"Path to the database file." env:"FOCUSLY_DB"`

	Run    runCmd    `cmd:"" default:"1" help:"Launch the tracker."`
	Export exportCmd `cmd:"" help:"Export tasks to a file."`
}

type runCmd struct{}

type exportCmd struct {
	Format string `enum:"csv,json" default:"csv" help:"Export format (csv or json)."`
	Out    string `help:"Output path. Defaults to ~/focusly-export-<date>.<format>."`
}

type appContext struct {
	store  *store.Store
	logger *slog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	ktx := kong.Parse(&cli,
		kong.Name("focusly"),
		kong.Description("A single-user productivity tracker for the terminal."),
	)

	dbPath := cfg.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}

	s, err := store.New(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	ktx.FatalIfErrorf(ktx.Run(&appContext{store: s, logger: logger}))
}

func (c *runCmd) Run(ctx *appContext) error {
	app := tui.NewApp(ctx.store, ctx.logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (c *exportCmd) Run(ctx *appContext) error {
	doc := ctx.store.Load()

	path := c.Out
	if path == "" {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")
		path = filepath.Join(home, fmt.Sprintf("focusly-export-%s.%s", dateStr, c.Format))
	}

	var err error
	if c.Format == "json" {
		err = export.ToJSON(doc.Tasks, path)
	} else {
		err = export.ToCSV(doc.Tasks, path)
	}
	if err != nil {
		return err
	}
	fmt.Printf("exported %d tasks to %s\n", len(doc.Tasks), path)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
