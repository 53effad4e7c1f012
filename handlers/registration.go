// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

type RegistrationHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewRegistrationHandler(e *election.Election, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{election: e, cfg: cfg}
}

// RegisterCandidate handles menu option 1
func (h *RegistrationHandler) RegisterCandidate(c *middleware.Console) error {
	middleware.Heading(c, "Register candidate")

	name, err := c.Prompt("Full name: ")
	if err != nil {
		return err
	}
	documentID, err := c.Prompt("Document number: ")
	if err != nil {
		return err
	}
	party, err := c.Prompt("Political party: ")
	if err != nil {
		return err
	}

	if name == "" || documentID == "" || party == "" {
		middleware.ErrorMessage(c, "all fields are required")
		return nil
	}

	if err := h.election.RegisterCandidate(election.NewCandidate(name, documentID, party)); err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	slog.Info("candidate registered", "election_id", h.election.ID(), "candidate_id", documentID)

	middleware.SuccessMessage(c, "Candidate %s registered successfully.", name)
	return nil
}

// RegisterVoter handles menu option 2
func (h *RegistrationHandler) RegisterVoter(c *middleware.Console) error {
	middleware.Heading(c, "Register voter")

	name, err := c.Prompt("Full name: ")
	if err != nil {
		return err
	}
	documentID, err := c.Prompt("Document number: ")
	if err != nil {
		return err
	}

	if name == "" || documentID == "" {
		middleware.ErrorMessage(c, "all fields are required")
		return nil
	}

	if err := h.election.RegisterVoter(election.NewVoter(name, documentID)); err != nil {
		middleware.ErrorResponse(c, err)
		return nil
	}

	// Voter registration is not phase-gated; note late registrations
	if phase := h.election.Phase(); phase != election.PhasePreparation {
		slog.Warn("voter registered after preparation", "election_id", h.election.ID(), "voter_id", documentID, "phase", phase)
	} else {
		slog.Info("voter registered", "election_id", h.election.ID(), "voter_id", documentID)
	}

	middleware.SuccessMessage(c, "Voter %s registered successfully.", name)
	return nil
}

// ListCandidates handles menu option 3
func (h *RegistrationHandler) ListCandidates(c *middleware.Console) error {
	middleware.Heading(c, "Registered candidates")

	candidates := h.election.Candidates()
	if len(candidates) == 0 {
		c.Println("No candidates registered.")
		return nil
	}
	for i, candidate := range candidates {
		c.Printf("%d. %s\n", i+1, candidate)
	}
	return nil
}

// ListVoters handles menu option 4
func (h *RegistrationHandler) ListVoters(c *middleware.Console) error {
	middleware.Heading(c, "Registered voters")

	voters := h.election.Voters()
	if len(voters) == 0 {
		c.Println("No voters registered.")
		return nil
	}
	for i, voter := range voters {
		c.Printf("%d. %s\n", i+1, voter)
	}
	return nil
}
