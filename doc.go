// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox voting shell.

ballotbox runs a single election in memory: candidates and voters are
registered, voting is opened, ballots are cast (for a candidate, blank or
null) and, once voting is finalized, results are printed with turnout and a
winner.

# Starting the Shell

	go run . -t "Student council 2025"

Without a title the shell asks for one. Input may be piped:

	printf '1\nAna\n1\nX\n0\n' | go run . -t Demo

# Configuration

Every setting has a flag and an environment variable. Variables may also come
from a .env file (see -env), which never overrides the real environment.

  - ELECTION_TITLE (-t): election title
  - ELECTION_DATE (-date): election date, YYYY-MM-DD (default: today)
  - RESULTS_FORMAT (-format): text or json (default: text)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: warn)
  - CODE_SEED (-seed): non-zero seed for reproducible verification codes
  - NO_COLOR (-no-color): disable colored output

Logs are written to stderr.

# Architecture

  - election: Person, Candidate, Voter, Election and results (no I/O)
  - receipt: verification code generation
  - handlers: menu command handlers
  - router: menu table and run loop
  - middleware: console prompts, messages, command logging
  - models: menu options and results report types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
