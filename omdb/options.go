package omdb

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 5 * time.Second

// DefaultUserAgent is sent unless overridden.
const DefaultUserAgent = "moviepeek"

// Plot lengths accepted by the API.
const (
	PlotShort = "short"
	PlotFull  = "full"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRateLimit throttles outbound lookups. A zero limit disables it.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithPlot requests a short or full plot. Empty leaves the API default.
func WithPlot(plot string) Option {
	return func(c *Client) {
		c.plot = plot
	}
}
