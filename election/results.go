// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sort"
	"time"
)

// Standing is one candidate's line in the results
type Standing struct {
	Rank      int // 1-indexed
	Candidate Candidate
	Votes     int
	Share     float64 // percent of all ballots, blank and null included
}

// Results is the tally of a finalized election
type Results struct {
	Title            string
	Date             time.Time
	TotalVotes       int
	RegisteredVoters int
	Turnout          float64 // percent of registered voters who cast any ballot
	Standings        []Standing
	BlankVotes       int
	BlankShare       float64
	NullVotes        int
	NullShare        float64

	// Winner is nil when no ballot went to a candidate
	Winner *Standing
}

// NoVotes reports whether the election closed without any ballot
func (r Results) NoVotes() bool {
	return r.TotalVotes == 0
}

// ComputeResults tallies a finalized election. Candidates are ranked by
// votes, ties keep registration order.
func (e *Election) ComputeResults() (Results, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseFinalized {
		return Results{}, fmt.Errorf("%w: results are available once the election is finalized", ErrIllegalPhase)
	}

	res := Results{
		Title:            e.title,
		Date:             e.date,
		RegisteredVoters: len(e.voters),
		BlankVotes:       e.blankVotes,
		NullVotes:        e.nullVotes,
	}

	candidateVotes := 0
	for _, c := range e.candidates {
		candidateVotes += c.votes
	}
	res.TotalVotes = candidateVotes + e.blankVotes + e.nullVotes

	if res.TotalVotes == 0 {
		return res, nil
	}

	if res.RegisteredVoters > 0 {
		res.Turnout = float64(res.TotalVotes) / float64(res.RegisteredVoters) * 100
	}

	ranked := make([]Candidate, len(e.candidates))
	for i, c := range e.candidates {
		ranked[i] = *c
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].votes > ranked[j].votes
	})

	total := float64(res.TotalVotes)
	res.Standings = make([]Standing, len(ranked))
	for i, c := range ranked {
		res.Standings[i] = Standing{
			Rank:      i + 1,
			Candidate: c,
			Votes:     c.votes,
			Share:     float64(c.votes) / total * 100,
		}
	}
	res.BlankShare = float64(e.blankVotes) / total * 100
	res.NullShare = float64(e.nullVotes) / total * 100

	if res.TotalVotes > e.blankVotes+e.nullVotes {
		winner := res.Standings[0]
		res.Winner = &winner
	}

	return res, nil
}
