// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Title: Election title (prompted at startup when empty)
  - Date: Election date (zero means today)
  - ResultsFormat: "text" (default) or "json"
  - LogLevel: slog level (default: warn)
  - CodeSeed: Non-zero makes verification codes reproducible (demos only)
  - NoColor: Disable colored output
  - EnvFile: Path to the .env file (default: .env)

# CLI Flags

	-t          Election title
	-date       Election date (YYYY-MM-DD)
	-format     Results format (text or json)
	-log-level  Log level (debug, info, warn, error)
	-seed       Verification code seed
	-no-color   Disable colors
	-env        Path to .env file

# Environment Variables

Flags fall back to environment variables:

	ELECTION_TITLE → -t
	ELECTION_DATE  → -date
	RESULTS_FORMAT → -format
	LOG_LEVEL      → -log-level
	CODE_SEED      → -seed
	NO_COLOR       → -no-color (any value)

Variables may also come from the .env file, loaded with godotenv. The file
never overrides variables already present in the environment, so the order
of precedence is: CLI flags, environment, .env file, defaults.

# Validation

ParseFlags returns an error for malformed values:

  - ELECTION_DATE must be YYYY-MM-DD
  - RESULTS_FORMAT must be text or json
  - LOG_LEVEL must be a slog level name
  - CODE_SEED must be a non-negative integer
*/
package cliparse
