// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

type ElectionHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewElectionHandler(e *election.Election, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{election: e, cfg: cfg}
}

// StartVoting handles menu option 5
func (h *ElectionHandler) StartVoting(c *middleware.Console) error {
	if err := h.election.StartVoting(); err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	slog.Info("voting started", "election_id", h.election.ID(), "candidates", len(h.election.Candidates()))

	middleware.SuccessMessage(c, "Voting for '%s' started successfully.", h.election.Title())
	return nil
}

// FinalizeVoting handles menu option 7
func (h *ElectionHandler) FinalizeVoting(c *middleware.Console) error {
	if err := h.election.FinalizeVoting(); err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	slog.Info("voting finalized", "election_id", h.election.ID())

	middleware.SuccessMessage(c, "Voting for '%s' finalized successfully.", h.election.Title())
	return nil
}

// Summary handles menu option 9
func (h *ElectionHandler) Summary(c *middleware.Console) error {
	middleware.Heading(c, "Election summary")

	voters := h.election.Voters()
	voted := 0
	for _, v := range voters {
		if v.HasVoted() {
			voted++
		}
	}

	c.Println(h.election)
	c.Printf("Candidates: %s\n", humanize.Comma(int64(len(h.election.Candidates()))))
	c.Printf("Voters: %s (%s voted)\n", humanize.Comma(int64(len(voters))), humanize.Comma(int64(voted)))
	return nil
}
