// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the console plumbing shared by all command
handlers.

# Console

Console wraps the input reader and output writer:

	con := middleware.NewConsole(os.Stdin, os.Stdout, isatty.IsTerminal(os.Stdin.Fd()))
	name, err := con.Prompt("Full name: ")
	n, err := con.PromptInt("Select an option: ") // ErrNotANumber on bad input

Prompt returns io.EOF when input runs out, which ends the shell loop.
Pause waits for Enter only on interactive consoles so piped scripts run
straight through.

# Handlers

Commands share one signature:

	type HandlerFunc func(c *Console) error

# Logging

WithLogging logs the command name and duration with slog:

	router.Handle(1, "Register candidate", middleware.WithLogging("register_candidate", h.RegisterCandidate))

# Output Helpers

	middleware.Heading(c, "Register candidate")  // "-- REGISTER CANDIDATE --"
	middleware.ErrorMessage(c, "all fields are required")
	middleware.ErrorResponse(c, err)
	middleware.SuccessMessage(c, "Candidate %s registered.", name)

Errors print in red and confirmations in green through fatih/color. Each
console starts from color.NoColor and can be switched with SetColor without
affecting other consoles or the global setting.
*/
package middleware
