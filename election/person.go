// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/danielhkuo/ballotbox/receipt"
)

// Person holds the identity shared by candidates and voters
type Person struct {
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
}

func (p Person) String() string {
	return fmt.Sprintf("%s (ID: %s)", p.Name, p.DocumentID)
}

// Candidate is a person running for the election under a party
type Candidate struct {
	Person
	Party string `json:"party"`

	votes int
}

func NewCandidate(name, documentID, party string) Candidate {
	return Candidate{
		Person: Person{Name: name, DocumentID: documentID},
		Party:  party,
	}
}

// Votes returns the number of ballots cast for the candidate
func (c Candidate) Votes() int {
	return c.votes
}

// RegisterVote adds one vote to the candidate's tally
func (c *Candidate) RegisterVote() {
	c.votes++
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s - Party: %s (ID: %s)", c.Name, c.Party, c.DocumentID)
}

// Voter is a person allowed to cast exactly one ballot
type Voter struct {
	Person

	hasVoted bool
	code     string
}

func NewVoter(name, documentID string) Voter {
	return Voter{Person: Person{Name: name, DocumentID: documentID}}
}

// HasVoted reports whether the voter already cast a ballot
func (v Voter) HasVoted() bool {
	return v.hasVoted
}

// VerificationCode returns the receipt assigned when the ballot was cast.
// ok is false until then.
func (v Voter) VerificationCode() (code string, ok bool) {
	return v.code, v.hasVoted
}

// CastBallot finalizes the voter's ballot. A nil candidate records the
// ballot without a candidate link (blank and null votes); the caller counts
// those. A nil code source falls back to receipt.GenerateCode. Phase and
// registration checks belong to the Election.
func (v *Voter) CastBallot(c *Candidate, codes CodeSource) error {
	if v.hasVoted {
		return fmt.Errorf("%w: %s", ErrAlreadyVoted, v.DocumentID)
	}
	if codes == nil {
		codes = CodeSourceFunc(receipt.GenerateCode)
	}

	// Draw the code first so a failing source leaves the voter untouched
	code, err := codes.NewCode()
	if err != nil {
		return fmt.Errorf("failed to assign verification code: %w", err)
	}

	v.code = code
	v.hasVoted = true
	if c != nil {
		c.RegisterVote()
	}
	return nil
}

func (v Voter) String() string {
	status := "Not voted"
	if v.hasVoted {
		status = "Voted"
	}
	return fmt.Sprintf("%s (ID: %s) - %s", v.Name, v.DocumentID, status)
}
