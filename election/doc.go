// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements a single election: candidates, voters, the
phase state machine, ballot casting and the final tally.

The package performs no I/O. The console shell in handlers and router
drives it and renders what it returns.

# Lifecycle

Elections progress through three phases: preparation → voting → finalized

	e := election.New("Student council", time.Time{}, nil)
	e.RegisterCandidate(election.NewCandidate("Ana", "1", "Blue"))
	e.RegisterVoter(election.NewVoter("Luis", "10"))
	e.StartVoting()                                   // needs ≥1 candidate
	code, err := e.CastVote("10", election.ForCandidate(0))
	e.FinalizeVoting()
	res, err := e.ComputeResults()

Candidates can only be registered in preparation, ballots only cast while
voting, and results only computed once finalized. Voters can be registered
in any phase.

# Ballots

A Choice takes one of three paths:

  - Blank(): counted as a blank vote
  - Null(): counted as a spoiled ballot
  - ForCandidate(i): a vote for the i-th registered candidate

Every successful ballot marks the voter as voted and assigns an 8-character
verification code from the election's CodeSource. A voter votes once.

# Results

ComputeResults ranks candidates by votes (ties keep registration order),
computes shares over all ballots and turnout over registered voters. A
winner is declared only if at least one ballot went to a candidate.

# Errors

Failures wrap one of the sentinel errors and leave state unchanged:

	ErrDuplicateID      // candidate or voter id already registered
	ErrIllegalPhase     // operation not allowed in the current phase
	ErrUnknownVoter     // voter id not registered
	ErrAlreadyVoted     // second ballot from the same voter
	ErrInvalidSelection // candidate index out of range
	ErrNoCandidates     // StartVoting with no candidates
*/
package election
