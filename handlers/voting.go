// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type VotingHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewVotingHandler(e *election.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{election: e, cfg: cfg}
}

// CastVote handles menu option 6
func (h *VotingHandler) CastVote(c *middleware.Console) error {
	// Refuse before asking anything
	if h.election.Phase() != election.PhaseVoting {
		middleware.ErrorMessage(c, "voting is not in progress")
		return nil
	}

	middleware.Heading(c, "Cast vote")

	voterID, err := c.Prompt("Voter document number: ")
	if err != nil {
		return err
	}

	voter, ok := h.election.Voter(voterID)
	if !ok {
		middleware.ErrorMessage(c, "no voter with ID "+voterID)
		return nil
	}
	if voter.HasVoted() {
		middleware.ErrorMessage(c, "voter "+voter.Name+" has already voted")
		return nil
	}

	candidates := h.election.Candidates()
	c.Println("\nBallot options:")
	c.Printf("%d. Blank vote\n", models.BallotBlank)
	for i, candidate := range candidates {
		c.Printf("%d. %s\n", i+1, candidate)
	}
	c.Printf("%d. Null vote\n", models.BallotNull)

	option, err := c.PromptInt("\nSelect an option: ")
	if errors.Is(err, middleware.ErrNotANumber) {
		middleware.ErrorMessage(c, "please enter a number")
		return nil
	}
	if err != nil {
		return err
	}

	choice, ok := BallotChoice(option, len(candidates))
	if !ok {
		middleware.ErrorMessage(c, "invalid ballot option")
		return nil
	}

	code, err := h.election.CastVote(voterID, choice)
	if err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	slog.Info("ballot cast", "election_id", h.election.ID(), "voter_id", voterID)

	switch choice.Kind {
	case election.ChoiceBlank:
		middleware.SuccessMessage(c, "Blank vote recorded successfully.")
	case election.ChoiceNull:
		middleware.SuccessMessage(c, "Null vote recorded successfully.")
	default:
		middleware.SuccessMessage(c, "Vote for %s recorded successfully.", candidates[choice.Index].Name)
	}
	c.Printf("Verification code: %s\n", code)
	return nil
}

// BallotChoice maps a ballot menu option onto a Choice. Candidates are
// numbered from 1 in registration order.
func BallotChoice(option, candidateCount int) (election.Choice, bool) {
	switch {
	case option == models.BallotBlank:
		return election.Blank(), true
	case option == models.BallotNull:
		return election.Null(), true
	case option >= 1 && option <= candidateCount:
		return election.ForCandidate(option - 1), true
	default:
		return election.Choice{}, false
	}
}
