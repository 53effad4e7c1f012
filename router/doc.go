// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the shell's main menu and its run loop.

# Creating the Router

	menu := router.NewRouter(e, cfg)
	err := menu.Run(con)

NewRouter creates the handlers and binds each menu option to one, wrapped
with middleware.WithLogging.

# Menu

Registration:

	1. Register candidate         → RegistrationHandler.RegisterCandidate
	2. Register voter             → RegistrationHandler.RegisterVoter
	3. List registered candidates → RegistrationHandler.ListCandidates
	4. List registered voters     → RegistrationHandler.ListVoters

Lifecycle and voting:

	5. Start voting    → ElectionHandler.StartVoting
	6. Cast vote       → VotingHandler.CastVote
	7. Finalize voting → ElectionHandler.FinalizeVoting

Results:

	8. Show results     → ResultsHandler.ShowResults (finalized only)
	9. Election summary → ElectionHandler.Summary
	0. Exit

# Run Loop

Run renders the menu, reads an option, dispatches it and pauses on
interactive consoles. Non-numeric and unknown options print an error and
the loop continues. Option 0 or the end of input ends the loop.
*/
package router
