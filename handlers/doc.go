// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the menu commands of the ballotbox shell.

# Handler Types

Each handler is a struct holding the election and the configuration:

  - RegistrationHandler: candidate and voter registration and listings
  - ElectionHandler: starting and finalizing voting, election summary
  - VotingHandler: ballot casting
  - ResultsHandler: results as text or JSON

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(e, cfg)

Every handler method is a middleware.HandlerFunc. Domain failures (duplicate
ids, wrong phase, invalid options) are printed and the method returns nil so
the menu keeps running. A non-nil error, usually io.EOF, ends the shell.

# Election Lifecycle

	preparation → voting → finalized

	1, 2 register candidates and voters
	5    StartVoting (needs at least one candidate)
	6    CastVote (voting only)
	7    FinalizeVoting
	8    ShowResults (finalized only)

# Ballot Options

	0      blank vote
	1..n   candidate in registration order
	99     null vote

Each accepted ballot prints the voter's verification code.
*/
package handlers
