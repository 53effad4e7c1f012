// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type ResultsHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewResultsHandler(e *election.Election, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{election: e, cfg: cfg}
}

// ShowResults handles menu option 8
// Results stay sealed until the election is finalized
func (h *ResultsHandler) ShowResults(c *middleware.Console) error {
	res, err := h.election.ComputeResults()
	if err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	slog.Info("results computed", "election_id", h.election.ID(), "total_votes", res.TotalVotes)

	if h.cfg.ResultsFormat == cliparse.FormatJSON {
		return middleware.JSONResponse(c, models.NewResultsReport(h.election.ID(), res))
	}

	renderResults(c, res)
	return nil
}

func renderResults(c *middleware.Console, res election.Results) {
	c.Println("\n===== ELECTION RESULTS =====")
	c.Printf("Title: %s\n", res.Title)
	c.Printf("Date: %s\n", res.Date.Format(time.DateOnly))
	c.Printf("Total votes: %s\n", humanize.Comma(int64(res.TotalVotes)))

	if res.NoVotes() {
		c.Println("\n" + models.MessageNoVotes)
		return
	}

	c.Printf("Turnout: %.2f%% of %s registered\n", res.Turnout, humanize.Comma(int64(res.RegisteredVoters)))

	c.Println("\nRESULTS BY CANDIDATE:")
	for _, s := range res.Standings {
		c.Printf("%-4s %s (%s): %s (%.2f%%)\n",
			humanize.Ordinal(s.Rank), s.Candidate.Name, s.Candidate.Party, votes(s.Votes), s.Share)
	}

	c.Printf("\nBlank votes: %s (%.2f%%)\n", humanize.Comma(int64(res.BlankVotes)), res.BlankShare)
	c.Printf("Null votes: %s (%.2f%%)\n", humanize.Comma(int64(res.NullVotes)), res.NullShare)

	if res.Winner == nil {
		c.Println("\n" + models.MessageNoWinner)
		return
	}
	c.Println()
	middleware.Highlight(c, "WINNER: %s of the %s party with %s.",
		res.Winner.Candidate.Name, res.Winner.Candidate.Party, votes(res.Winner.Votes))
}

// votes renders a count as "1 vote" or "1,024 votes"
func votes(n int) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "")
}
