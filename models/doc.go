// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the menu constants and report types shared by the
console shell.

# Menu Options

Main menu:

	OptionRegisterCandidate = 1
	OptionRegisterVoter     = 2
	OptionListCandidates    = 3
	OptionListVoters        = 4
	OptionStartVoting       = 5
	OptionCastVote          = 6
	OptionFinalizeVoting    = 7
	OptionShowResults       = 8
	OptionSummary           = 9
	OptionExit              = 0

Ballot menu (candidates are numbered 1..n in registration order):

	BallotBlank = 0
	BallotNull  = 99

# Report Types

Types for JSON results output:

  - ResultsReport: totals, turnout, standings, blank/null counts, winner
  - StandingReport: one candidate's rank, votes and share

NewResultsReport builds a ResultsReport from election.Results. When there
is no winner the report carries a Message instead.
*/
package models
