package search

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/moviepeek/movie"
	"github.com/s0up4200/moviepeek/omdb"
	"github.com/s0up4200/moviepeek/view"
)

// View is the set of transitions the pipeline drives.
type View interface {
	EnterWaiting() view.Ticket
	EnterFound(ctx context.Context, t view.Ticket, rec movie.Movie) bool
	EnterNotFound(t view.Ticket) bool
	EnterError(t view.Ticket) bool
}

// Report describes one pipeline run.
type Report struct {
	Query string
	// State is the view state the run asked for. StateIdle means the
	// query was empty and nothing happened.
	State view.State
	// Applied is false when the view refused a superseded outcome.
	Applied bool
	Movie   movie.Movie
	Err     error
}

// Pipeline runs search → fetch → normalize → render.
type Pipeline struct {
	api    omdb.API
	view   View
	logger zerolog.Logger
}

// NewPipeline creates a pipeline over api and v.
func NewPipeline(api omdb.API, v View, logger zerolog.Logger) *Pipeline {
	return &Pipeline{api: api, view: v, logger: logger}
}

// Run performs one search. An empty or blank query does nothing.
func (p *Pipeline) Run(ctx context.Context, query string) Report {
	query = strings.TrimSpace(query)
	if query == "" {
		return Report{State: view.StateIdle}
	}

	report := Report{Query: query}
	ticket := p.view.EnterWaiting()
	log := p.logger.With().Str("query", query).Uint64("ticket", uint64(ticket)).Logger()
	log.Info().Msg("Searching")

	raw, err := p.api.Lookup(ctx, query)
	if err != nil {
		log.Warn().Err(err).Bool("timeout", omdb.IsTimeout(err)).Msg("Lookup failed")
		report.State = view.StateError
		report.Err = err
		report.Applied = p.view.EnterError(ticket)
		return report
	}

	res := movie.Normalize(raw)
	log.Debug().Str("outcome", res.Outcome.String()).Str("message", res.Message).Msg("Lookup classified")

	switch res.Outcome {
	case movie.OutcomeFound:
		report.State = view.StateFound
		report.Movie = res.Movie
		report.Applied = p.view.EnterFound(ctx, ticket, res.Movie)
	case movie.OutcomeNotFound:
		report.State = view.StateNotFound
		report.Applied = p.view.EnterNotFound(ticket)
	default:
		log.Warn().Str("reason", res.Message).Msg("Malformed lookup response")
		report.State = view.StateError
		report.Err = &MalformedError{Reason: res.Message}
		report.Applied = p.view.EnterError(ticket)
	}

	return report
}
