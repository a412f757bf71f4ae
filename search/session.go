package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/moviepeek/view"
)

// Session handles input events for one interactive view.
type Session struct {
	ctx       context.Context
	pipeline  *Pipeline
	view      *view.Controller
	debouncer *Debouncer
	logger    zerolog.Logger
	onReport  func(Report)
}

// NewSession wires a debouncer in front of pipeline. Searches run on the
// debouncer's goroutine, so Input never blocks on the network.
func NewSession(ctx context.Context, pipeline *Pipeline, v *view.Controller, quiet time.Duration, logger zerolog.Logger) *Session {
	s := &Session{
		ctx:      ctx,
		pipeline: pipeline,
		view:     v,
		logger:   logger,
	}
	s.debouncer = NewDebouncer(quiet, s.run)
	return s
}

// OnReport registers a callback invoked after each completed run.
func (s *Session) OnReport(fn func(Report)) {
	s.onReport = fn
}

func (s *Session) run(query string) {
	report := s.pipeline.Run(s.ctx, query)
	if report.State == view.StateIdle {
		s.logger.Debug().Msg("Ignoring empty query")
		return
	}
	if s.onReport != nil {
		s.onReport(report)
	}
}

// Input records a change of the search field.
func (s *Session) Input(text string) {
	s.debouncer.Trigger(text)
}

// ShowMore toggles the extended details.
func (s *Session) ShowMore() {
	s.view.ToggleShowMore()
}

// Close drops any pending search and waits for running ones. Input
// calls made meanwhile wait until it returns.
func (s *Session) Close() {
	s.debouncer.Stop()
	s.debouncer.Wait()
}

// Drain waits for the pending search to fire and finish.
func (s *Session) Drain() {
	s.debouncer.Wait()
}
