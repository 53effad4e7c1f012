// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

// TestFullVotingWorkflow drives the shell end to end:
// 1. Try to vote before voting starts
// 2. Register candidates and voters
// 3. Start voting
// 4. Cast a candidate vote and a blank vote
// 5. Try to vote twice
// 6. Finalize voting
// 7. Verify results
func TestFullVotingWorkflow(t *testing.T) {
	e := testutil.CreateTestElection(t, nil)
	r := NewRouter(e, testutil.GetTestConfig())

	script := []string{
		// Step 1: vote before start
		"6",
		// Step 2: registration
		"1", "Ana Torres", "1", "X",
		"1", "Bruno Diaz", "2", "Y",
		"2", "Valeria", "10",
		"2", "Mateo", "11",
		"3",
		// Step 3: start
		"5",
		// Step 4: Valeria votes for Ana, Mateo votes blank
		"6", "10", "1",
		"6", "11", "0",
		// Step 5: Valeria again, refused before the ballot is shown
		"6", "10",
		// Step 6: finalize
		"7",
		// Step 7: results
		"8",
		"0",
	}

	c, out := testutil.NewScriptedConsole(script...)
	if err := r.Run(c); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	t.Logf("Shell output:\n%s", out.String())

	testutil.AssertContains(t, out,
		"Error: voting is not in progress",
		"Candidate Ana Torres registered successfully.",
		"Voter Mateo registered successfully.",
		"1. Ana Torres - Party: X (ID: 1)",
		"Voting for 'Test Election' started successfully.",
		"Vote for Ana Torres recorded successfully.",
		"Verification code: AAAA0001",
		"Blank vote recorded successfully.",
		"Verification code: AAAA0002",
		"Error: voter Valeria has already voted",
		"Voting for 'Test Election' finalized successfully.",
		"Total votes: 2",
		"Turnout: 100.00% of 2 registered",
		"1st  Ana Torres (X): 1 vote (50.00%)",
		"Blank votes: 1 (50.00%)",
		"WINNER: Ana Torres of the X party with 1 vote.",
	)

	if e.Phase() != election.PhaseFinalized {
		t.Errorf("Expected finalized phase, got %s", e.Phase())
	}
	if e.BlankVotes() != 1 {
		t.Errorf("Expected 1 blank vote, got %d", e.BlankVotes())
	}
	candidates := e.Candidates()
	if candidates[0].Votes() != 1 || candidates[1].Votes() != 0 {
		t.Errorf("Expected votes [1 0], got [%d %d]", candidates[0].Votes(), candidates[1].Votes())
	}
}

func TestWorkflow_JSONResults(t *testing.T) {
	e := testutil.CreateTestElection(t, nil)
	cfg := testutil.GetTestConfig()
	cfg.ResultsFormat = cliparse.FormatJSON
	r := NewRouter(e, cfg)

	testutil.AddTestCandidates(t, e, "X", "Y")
	testutil.AddTestVoters(t, e, "10", "11", "12", "13")

	c, out := testutil.NewScriptedConsole(
		"5",
		"6", "10", "99",
		"6", "11", "99",
		"7",
	)
	if err := r.Run(c); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Results alone, so the JSON can be decoded
	c, out = testutil.NewScriptedConsole()
	if err := r.Dispatch(c, models.OptionShowResults); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	var report models.ResultsReport
	if err := json.NewDecoder(strings.NewReader(out.String())).Decode(&report); err != nil {
		t.Fatalf("Failed to decode results: %v\n%s", err, out.String())
	}
	if report.NullVotes != 2 || report.TotalVotes != 2 {
		t.Errorf("Expected 2 null votes of 2, got %d of %d", report.NullVotes, report.TotalVotes)
	}
	if report.Turnout != 50 {
		t.Errorf("Expected turnout 50, got %f", report.Turnout)
	}
	if report.Winner != nil {
		t.Errorf("Expected no winner, got %+v", report.Winner)
	}
	if report.Message != models.MessageNoWinner {
		t.Errorf("Expected no-winner message, got %q", report.Message)
	}
}
