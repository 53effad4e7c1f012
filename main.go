package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/receipt"
	"github.com/danielhkuo/ballotbox/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they never mix with the menu
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	console := middleware.NewConsole(os.Stdin, os.Stdout, interactive)
	console.SetColor(!cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()))

	title := cfg.Title
	for title == "" {
		title, err = console.Prompt("Election title: ")
		if err != nil {
			slog.Error("no election title", "error", err)
			os.Exit(1)
		}
	}

	// A seed makes receipts reproducible (demos, recordings)
	var codes election.CodeSource
	if cfg.CodeSeed != 0 {
		codes = receipt.NewSeeded(cfg.CodeSeed)
		slog.Warn("verification codes are seeded and predictable", "seed", cfg.CodeSeed)
	}

	e := election.New(title, cfg.Date, codes)
	slog.Info("Election created", "election_id", e.ID(), "title", e.Title(), "date", e.Date().Format("2006-01-02"))

	// Create router
	menu := router.NewRouter(e, cfg)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		console.Println("\n\nProgram terminated by user.")
		slog.Info("Interrupted", "election_id", e.ID(), "phase", e.Phase())
		os.Exit(0)
	}()

	if err := menu.Run(console); err != nil {
		slog.Error("Shell stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Shell closed", "election_id", e.ID(), "phase", e.Phase())
}
