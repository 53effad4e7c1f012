// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/receipt"
)

var (
	ErrDuplicateID      = errors.New("duplicate id")
	ErrIllegalPhase     = errors.New("operation not allowed in current phase")
	ErrUnknownVoter     = errors.New("unknown voter")
	ErrAlreadyVoted     = errors.New("voter has already voted")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoCandidates     = errors.New("no candidates registered")
)

// Phase is the election's stage. Transitions only move forward:
// preparation → voting → finalized.
type Phase string

const (
	PhasePreparation Phase = "preparation"
	PhaseVoting      Phase = "voting"
	PhaseFinalized   Phase = "finalized"
)

// CodeSource hands out verification codes for cast ballots
type CodeSource interface {
	NewCode() (string, error)
}

// CodeSourceFunc adapts a plain function to CodeSource
type CodeSourceFunc func() (string, error)

func (f CodeSourceFunc) NewCode() (string, error) { return f() }

// Election owns the candidates, voters and counters of a single election.
// All methods are safe for concurrent use.
type Election struct {
	mu sync.Mutex

	id    uuid.UUID
	title string
	date  time.Time
	codes CodeSource

	phase      Phase
	candidates []*Candidate
	voters     map[string]*Voter
	voterOrder []string
	blankVotes int
	nullVotes  int
}

// New creates an election in the preparation phase. A zero date means
// today; a nil code source falls back to receipt.GenerateCode.
func New(title string, date time.Time, codes CodeSource) *Election {
	if date.IsZero() {
		date = time.Now()
	}
	if codes == nil {
		codes = CodeSourceFunc(receipt.GenerateCode)
	}

	y, m, d := date.Date()
	return &Election{
		id:     uuid.New(),
		title:  title,
		date:   time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		codes:  codes,
		phase:  PhasePreparation,
		voters: make(map[string]*Voter),
	}
}

func (e *Election) ID() uuid.UUID { return e.id }
func (e *Election) Title() string { return e.title }
func (e *Election) Date() time.Time { return e.date }

func (e *Election) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// RegisterCandidate adds a candidate while the election is in preparation.
// Registration order is kept for display and tie-breaking.
func (e *Election) RegisterCandidate(c Candidate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhasePreparation {
		return fmt.Errorf("%w: cannot register candidates once voting has started", ErrIllegalPhase)
	}

	for _, existing := range e.candidates {
		if existing.DocumentID == c.DocumentID {
			return fmt.Errorf("%w: a candidate with ID %s already exists", ErrDuplicateID, c.DocumentID)
		}
	}

	// Tallies only move through CastVote
	c.votes = 0
	e.candidates = append(e.candidates, &c)
	return nil
}

// RegisterVoter adds a voter. Unlike candidates, voters may be registered
// in any phase.
func (e *Election) RegisterVoter(v Voter) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.voters[v.DocumentID]; exists {
		return fmt.Errorf("%w: a voter with ID %s already exists", ErrDuplicateID, v.DocumentID)
	}

	v.hasVoted = false
	v.code = ""
	e.voters[v.DocumentID] = &v
	e.voterOrder = append(e.voterOrder, v.DocumentID)
	return nil
}

// StartVoting moves the election from preparation to voting
func (e *Election) StartVoting() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhasePreparation {
		return fmt.Errorf("%w: voting has already been started or finalized", ErrIllegalPhase)
	}
	if len(e.candidates) == 0 {
		return fmt.Errorf("%w: cannot start voting without candidates", ErrNoCandidates)
	}

	e.phase = PhaseVoting
	return nil
}

// FinalizeVoting moves the election from voting to finalized
func (e *Election) FinalizeVoting() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseVoting {
		return fmt.Errorf("%w: voting is not in progress", ErrIllegalPhase)
	}

	e.phase = PhaseFinalized
	return nil
}

// CastVote records one ballot for the voter and returns the verification
// code assigned to it. Either every counter and flag changes or none does.
func (e *Election) CastVote(voterID string, choice Choice) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseVoting {
		return "", fmt.Errorf("%w: voting is not in progress", ErrIllegalPhase)
	}

	voter, ok := e.voters[voterID]
	if !ok {
		return "", fmt.Errorf("%w: no voter with ID %s", ErrUnknownVoter, voterID)
	}
	if voter.hasVoted {
		return "", fmt.Errorf("%w: %s", ErrAlreadyVoted, voter.Name)
	}

	switch choice.Kind {
	case ChoiceBlank, ChoiceNull:
		if err := voter.CastBallot(nil, e.codes); err != nil {
			return "", err
		}
		if choice.Kind == ChoiceBlank {
			e.blankVotes++
		} else {
			e.nullVotes++
		}
	case ChoiceCandidate:
		if choice.Index < 0 || choice.Index >= len(e.candidates) {
			return "", fmt.Errorf("%w: no candidate at position %d", ErrInvalidSelection, choice.Index)
		}
		if err := voter.CastBallot(e.candidates[choice.Index], e.codes); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSelection, choice)
	}

	return voter.code, nil
}

// Candidates returns a snapshot of the candidates in registration order
func (e *Election) Candidates() []Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Candidate, len(e.candidates))
	for i, c := range e.candidates {
		out[i] = *c
	}
	return out
}

// Voters returns a snapshot of the voters in registration order
func (e *Election) Voters() []Voter {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Voter, 0, len(e.voterOrder))
	for _, id := range e.voterOrder {
		out = append(out, *e.voters[id])
	}
	return out
}

// Voter looks up a registered voter by document id
func (e *Election) Voter(documentID string) (Voter, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.voters[documentID]
	if !ok {
		return Voter{}, false
	}
	return *v, true
}

func (e *Election) BlankVotes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blankVotes
}

func (e *Election) NullVotes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nullVotes
}

func (e *Election) String() string {
	return fmt.Sprintf("Election: %s - Date: %s - Phase: %s", e.title, e.date.Format(time.DateOnly), e.Phase())
}
