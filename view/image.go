package view

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxPosterSize caps how much of a poster is downloaded.
const maxPosterSize = 8 << 20

// NopImageLoader treats every image as loaded immediately.
type NopImageLoader struct{}

// Load implements ImageLoader
func (NopImageLoader) Load(context.Context, string) error { return nil }

// HTTPImageLoader fetches the poster so the movie region is only revealed
// once the image is actually reachable.
type HTTPImageLoader struct {
	client *http.Client
}

// NewHTTPImageLoader creates a loader with its own timeout.
func NewHTTPImageLoader(timeout time.Duration) *HTTPImageLoader {
	return &HTTPImageLoader{client: &http.Client{Timeout: timeout}}
}

// Load downloads src and discards it.
func (l *HTTPImageLoader) Load(ctx context.Context, src string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("failed to create poster request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("poster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster request failed with status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("poster has unexpected content type %q", ct)
	}

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxPosterSize)); err != nil {
		return fmt.Errorf("failed to read poster: %w", err)
	}
	return nil
}
