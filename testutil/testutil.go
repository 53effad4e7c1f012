// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

// TestDate is the date every test election is held on
var TestDate = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

var ErrNoCodesLeft = errors.New("no verification codes left")

// FixedCodes hands out a predetermined list of verification codes
type FixedCodes struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func NewFixedCodes(codes ...string) *FixedCodes {
	return &FixedCodes{codes: codes}
}

func (f *FixedCodes) NewCode() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next >= len(f.codes) {
		return "", ErrNoCodesLeft
	}
	code := f.codes[f.next]
	f.next++
	return code, nil
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Title:         "Test Election",
		Date:          TestDate,
		ResultsFormat: cliparse.FormatText,
		LogLevel:      slog.LevelWarn,
		NoColor:       true,
	}
}

// CreateTestElection creates an election in preparation. A nil code source
// uses NewFixedCodes with AAAA0001, AAAA0002, ...
func CreateTestElection(t *testing.T, codes election.CodeSource) *election.Election {
	t.Helper()

	if codes == nil {
		var list []string
		for i := 1; i <= 99; i++ {
			list = append(list, fmt.Sprintf("AAAA%04d", i))
		}
		codes = NewFixedCodes(list...)
	}
	return election.New("Test Election", TestDate, codes)
}

// AddTestCandidates registers candidates named after their party:
// "Candidate X" with ids "1", "2", ... for parties X, Y, ...
func AddTestCandidates(t *testing.T, e *election.Election, parties ...string) {
	t.Helper()

	offset := len(e.Candidates())
	for i, party := range parties {
		id := strconv.Itoa(offset + i + 1)
		if err := e.RegisterCandidate(election.NewCandidate("Candidate "+party, id, party)); err != nil {
			t.Fatalf("Failed to register test candidate: %v", err)
		}
	}
}

// AddTestVoters registers voters with the given document ids
func AddTestVoters(t *testing.T, e *election.Election, ids ...string) {
	t.Helper()

	for _, id := range ids {
		if err := e.RegisterVoter(election.NewVoter("Voter "+id, id)); err != nil {
			t.Fatalf("Failed to register test voter: %v", err)
		}
	}
}

// StartTestVoting moves the election into the voting phase
func StartTestVoting(t *testing.T, e *election.Election) {
	t.Helper()

	if err := e.StartVoting(); err != nil {
		t.Fatalf("Failed to start voting: %v", err)
	}
}

// NewScriptedConsole creates a non-interactive console that reads the given
// lines and records its output. Colors are disabled on the console only.
func NewScriptedConsole(lines ...string) (*middleware.Console, *bytes.Buffer) {
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	out := &bytes.Buffer{}
	c := middleware.NewConsole(strings.NewReader(input), out, false)
	c.SetColor(false)
	return c, out
}

// AssertContains checks that the output contains every expected fragment
func AssertContains(t *testing.T, out *bytes.Buffer, expected ...string) {
	t.Helper()
	for _, s := range expected {
		if !strings.Contains(out.String(), s) {
			t.Errorf("Expected output to contain %q. Output:\n%s", s, out.String())
		}
	}
}

// AssertNotContains checks that none of the fragments appear in the output
func AssertNotContains(t *testing.T, out *bytes.Buffer, unexpected ...string) {
	t.Helper()
	for _, s := range unexpected {
		if strings.Contains(out.String(), s) {
			t.Errorf("Expected output not to contain %q. Output:\n%s", s, out.String())
		}
	}
}
