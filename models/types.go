package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/election"
)

// Main menu options
const (
	OptionExit              = 0
	OptionRegisterCandidate = 1
	OptionRegisterVoter     = 2
	OptionListCandidates    = 3
	OptionListVoters        = 4
	OptionStartVoting       = 5
	OptionCastVote          = 6
	OptionFinalizeVoting    = 7
	OptionShowResults       = 8
	OptionSummary           = 9
)

// Ballot menu options. Candidates are listed as 1..n between them.
const (
	BallotBlank = 0
	BallotNull  = 99
)

// Report types

type StandingReport struct {
	Rank       int     `json:"rank"` // 1-indexed ranking
	Name       string  `json:"name"`
	DocumentID string  `json:"document_id"`
	Party      string  `json:"party"`
	Votes      int     `json:"votes"`
	Share      float64 `json:"share"`
}

type ResultsReport struct {
	ElectionID       string           `json:"election_id"`
	Title            string           `json:"title"`
	Date             string           `json:"date"`
	TotalVotes       int              `json:"total_votes"`
	RegisteredVoters int              `json:"registered_voters"`
	Turnout          float64          `json:"turnout"`
	Standings        []StandingReport `json:"standings"`
	BlankVotes       int              `json:"blank_votes"`
	BlankShare       float64          `json:"blank_share"`
	NullVotes        int              `json:"null_votes"`
	NullShare        float64          `json:"null_share"`
	Winner           *StandingReport  `json:"winner,omitempty"`
	Message          string           `json:"message,omitempty"`
}

// Messages shown when there is no winner
const (
	MessageNoVotes  = "No votes were cast in this election."
	MessageNoWinner = "No clear winner: every ballot was blank or null."
)

func newStandingReport(s election.Standing) StandingReport {
	return StandingReport{
		Rank:       s.Rank,
		Name:       s.Candidate.Name,
		DocumentID: s.Candidate.DocumentID,
		Party:      s.Candidate.Party,
		Votes:      s.Votes,
		Share:      s.Share,
	}
}

// NewResultsReport converts computed results into their JSON shape
func NewResultsReport(electionID uuid.UUID, res election.Results) ResultsReport {
	report := ResultsReport{
		ElectionID:       electionID.String(),
		Title:            res.Title,
		Date:             res.Date.Format(time.DateOnly),
		TotalVotes:       res.TotalVotes,
		RegisteredVoters: res.RegisteredVoters,
		Turnout:          res.Turnout,
		Standings:        []StandingReport{},
		BlankVotes:       res.BlankVotes,
		BlankShare:       res.BlankShare,
		NullVotes:        res.NullVotes,
		NullShare:        res.NullShare,
	}

	for _, s := range res.Standings {
		report.Standings = append(report.Standings, newStandingReport(s))
	}

	switch {
	case res.NoVotes():
		report.Message = MessageNoVotes
	case res.Winner == nil:
		report.Message = MessageNoWinner
	default:
		w := newStandingReport(*res.Winner)
		report.Winner = &w
	}

	return report
}
