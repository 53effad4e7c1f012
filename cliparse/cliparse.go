// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Results output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Title         string
	Date          time.Time
	ResultsFormat string
	LogLevel      slog.Level
	CodeSeed      uint64
	NoColor       bool
	EnvFile       string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var date, logLevel, seed string

	flags := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	flags.StringVar(&cfg.Title, "t", "", "Election title (prompted if empty)")
	flags.StringVar(&date, "date", "", "Election date, YYYY-MM-DD (default: today)")
	flags.StringVar(&cfg.ResultsFormat, "format", "", "Results format (text or json)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&seed, "seed", "", "Seed for reproducible verification codes (demo only)")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Path to a .env file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables already set in the environment
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	// Fall back to environment variables
	if cfg.Title == "" {
		cfg.Title = os.Getenv("ELECTION_TITLE")
	}

	if date == "" {
		date = os.Getenv("ELECTION_DATE")
	}
	if date != "" {
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return Config{}, errors.New("invalid election date, expected YYYY-MM-DD")
		}
		cfg.Date = d
	}

	if cfg.ResultsFormat == "" {
		cfg.ResultsFormat = os.Getenv("RESULTS_FORMAT")
		if cfg.ResultsFormat == "" {
			cfg.ResultsFormat = FormatText
		}
	}
	if cfg.ResultsFormat != FormatText && cfg.ResultsFormat != FormatJSON {
		return Config{}, fmt.Errorf("invalid results format %q (use text or json)", cfg.ResultsFormat)
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	cfg.LogLevel = slog.LevelWarn // default
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if seed == "" {
		seed = os.Getenv("CODE_SEED")
	}
	if seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid code seed, expected a non-negative integer")
		}
		cfg.CodeSeed = n
	}

	if !cfg.NoColor {
		_, cfg.NoColor = os.LookupEnv("NO_COLOR")
	}

	return cfg, nil
}
