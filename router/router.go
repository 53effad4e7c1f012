// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"errors"
	"io"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

// Route binds a menu option to its handler
type Route struct {
	Option  int
	Label   string
	Handler middleware.HandlerFunc
}

// Router is the shell's main menu
type Router struct {
	routes []Route
	index  map[int]int
}

func NewRouter(e *election.Election, cfg cliparse.Config) *Router {
	r := &Router{index: make(map[int]int)}

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(e, cfg)
	electionHandler := handlers.NewElectionHandler(e, cfg)
	votingHandler := handlers.NewVotingHandler(e, cfg)
	resultsHandler := handlers.NewResultsHandler(e, cfg)

	// Registration
	r.Handle(models.OptionRegisterCandidate, "Register candidate", middleware.WithLogging("register_candidate", registrationHandler.RegisterCandidate))
	r.Handle(models.OptionRegisterVoter, "Register voter", middleware.WithLogging("register_voter", registrationHandler.RegisterVoter))
	r.Handle(models.OptionListCandidates, "List registered candidates", middleware.WithLogging("list_candidates", registrationHandler.ListCandidates))
	r.Handle(models.OptionListVoters, "List registered voters", middleware.WithLogging("list_voters", registrationHandler.ListVoters))

	// Lifecycle and voting
	r.Handle(models.OptionStartVoting, "Start voting", middleware.WithLogging("start_voting", electionHandler.StartVoting))
	r.Handle(models.OptionCastVote, "Cast vote", middleware.WithLogging("cast_vote", votingHandler.CastVote))
	r.Handle(models.OptionFinalizeVoting, "Finalize voting", middleware.WithLogging("finalize_voting", electionHandler.FinalizeVoting))

	// Results (sealed until finalized)
	r.Handle(models.OptionShowResults, "Show results", middleware.WithLogging("show_results", resultsHandler.ShowResults))
	r.Handle(models.OptionSummary, "Election summary", middleware.WithLogging("summary", electionHandler.Summary))

	return r
}

// Handle registers h under option, replacing any previous handler
func (r *Router) Handle(option int, label string, h middleware.HandlerFunc) {
	route := Route{Option: option, Label: label, Handler: h}
	if i, ok := r.index[option]; ok {
		r.routes[i] = route
		return
	}
	r.index[option] = len(r.routes)
	r.routes = append(r.routes, route)
}

// Routes returns the menu entries in display order
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// Render prints the main menu
func (r *Router) Render(c *middleware.Console) {
	c.Println("\n===== ELECTORAL VOTING SYSTEM =====")
	for _, route := range r.routes {
		c.Printf("%d. %s\n", route.Option, route.Label)
	}
	c.Printf("%d. Exit\n", models.OptionExit)
}

// Dispatch runs the handler for option
func (r *Router) Dispatch(c *middleware.Console, option int) error {
	i, ok := r.index[option]
	if !ok {
		middleware.ErrorMessage(c, "invalid option, please select an option from the menu")
		return nil
	}
	return r.routes[i].Handler(c)
}

// Run drives the menu loop until the exit option or the end of input
func (r *Router) Run(c *middleware.Console) error {
	for {
		r.Render(c)

		option, err := c.PromptInt("\nSelect an option: ")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, middleware.ErrNotANumber):
			middleware.ErrorMessage(c, "please enter a number")
		case err != nil:
			return err
		case option == models.OptionExit:
			c.Println("Thank you for using the electoral voting system!")
			return nil
		default:
			if err := r.Dispatch(c, option); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}

		if err := c.Pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
