package omdb

import (
	"context"

	"github.com/s0up4200/moviepeek/movie"
)

// API defines the interface for OMDb operations
type API interface {
	// Lookup fetches metadata for a single title
	Lookup(ctx context.Context, title string) (movie.RawResponse, error)
}

var _ API = (*Client)(nil)
