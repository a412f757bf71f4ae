package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/moviepeek/movie"
)

// Ticket identifies the pipeline run that entered Waiting.
type Ticket uint64

// ImageLoader resolves once an image source has finished loading.
type ImageLoader interface {
	Load(ctx context.Context, src string) error
}

// Renderer draws a snapshot after every transition.
type Renderer interface {
	Render(s Snapshot)
}

// Option configures a Controller.
type Option func(*Controller)

// WithStaleGuard controls whether outcomes from superseded runs are
// dropped. With the guard off the last outcome to arrive wins.
func WithStaleGuard(enabled bool) Option {
	return func(c *Controller) {
		c.staleGuard = enabled
	}
}

// WithRenderer sets the renderer called after each transition.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

// WithImageLoader sets the loader that gates population on the poster.
func WithImageLoader(l ImageLoader) Option {
	return func(c *Controller) {
		c.loader = l
	}
}

// Controller owns the Model and applies state transitions to it.
type Controller struct {
	mu         sync.Mutex
	layout     Layout
	model      Model
	latest     Ticket
	staleGuard bool
	loader     ImageLoader
	renderer   Renderer
	logger     zerolog.Logger
}

// NewController creates a controller over layout.
func NewController(layout Layout, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		layout:     layout,
		model:      newModel(),
		staleGuard: true,
		loader:     NopImageLoader{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current model.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{Model: c.model.clone(), Layout: c.layout}
}

func (c *Controller) renderLocked() {
	if c.renderer != nil {
		c.renderer.Render(c.snapshotLocked())
	}
}

// current reports whether t may still change the view. Caller holds mu.
func (c *Controller) current(t Ticket) bool {
	if !c.staleGuard || t == c.latest {
		return true
	}
	c.logger.Debug().
		Uint64("ticket", uint64(t)).
		Uint64("latest", uint64(c.latest)).
		Msg("Discarding outcome of superseded search")
	return false
}

// EnterWaiting clears the previous run's output and shows the waiting
// indicator. The returned ticket must accompany the run's outcome.
func (c *Controller) EnterWaiting() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	m := &c.model
	m.State = StateWaiting
	m.WaitingVisible = true
	m.MovieVisible = false
	m.removeBanner(BannerNotFound)
	m.removeBanner(BannerError)
	m.PlotExpanded = false
	m.ExtendedVisible = false

	c.renderLocked()
	return c.latest
}

// EnterFound populates the movie region from rec and reveals it. When the
// record has a poster, population waits for the image to load. It returns
// false if the outcome was discarded as stale.
func (c *Controller) EnterFound(ctx context.Context, t Ticket, rec movie.Movie) bool {
	src := rec.Get(c.layout.Image)

	if src != "" {
		c.mu.Lock()
		if !c.current(t) {
			c.mu.Unlock()
			return false
		}
		c.model.ImageSrc = src
		c.mu.Unlock()

		if err := c.loader.Load(ctx, src); err != nil {
			c.logger.Warn().Err(err).Str("poster", src).Msg("Poster failed to load")
			src = ""
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(t) {
		return false
	}

	m := &c.model
	m.WaitingVisible = false
	m.ImageSrc = src
	c.populate(rec)
	m.MovieVisible = true
	m.State = StateFound

	c.renderLocked()
	return true
}

// populate applies each element's render instruction. Caller holds mu.
func (c *Controller) populate(rec movie.Movie) {
	m := &c.model
	for _, el := range c.layout.Elements {
		value := rec.Get(el.ID)
		switch el.Kind {
		case KindLink:
			m.Href[el.ID] = value
		default:
			if value == "" {
				value = Placeholder
			}
			m.Text[el.ID] = value
		}
	}
}

// EnterNotFound shows the not-found banner.
func (c *Controller) EnterNotFound(t Ticket) bool {
	return c.enterBanner(t, StateNotFound, BannerNotFound)
}

// EnterError shows the error banner.
func (c *Controller) EnterError(t Ticket) bool {
	return c.enterBanner(t, StateError, BannerError)
}

func (c *Controller) enterBanner(t Ticket, state State, b Banner) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(t) {
		return false
	}

	c.model.WaitingVisible = false
	c.model.insertBanner(b)
	c.model.State = state

	c.renderLocked()
	return true
}

// ToggleShowMore flips the plot expansion and the extended region.
func (c *Controller) ToggleShowMore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.model.PlotExpanded = !c.model.PlotExpanded
	c.model.ExtendedVisible = !c.model.ExtendedVisible

	c.renderLocked()
}
