package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/moviepeek/config"
	"github.com/s0up4200/moviepeek/omdb"
)

// syncBuffer is a bytes.Buffer safe for a reader and a writer goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// movieHandler answers OMDb lookups by title, counting requests
func movieHandler(hits *atomic.Int32, delays map[string]time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		title := r.URL.Query().Get("t")
		time.Sleep(delays[title])

		if title == "Broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"Response":"True","Title":%q,"Year":"1995","Awards":"Nominated","imdbID":"tt0113277","Poster":"N/A"}`, title)
	}
}

// setupCommandGlobals points the package globals at server
func setupCommandGlobals(t *testing.T, server *httptest.Server) {
	t.Helper()

	prevCfg, prevLogger, prevClient := cfg, logger, omdbClient
	t.Cleanup(func() { cfg, logger, omdbClient = prevCfg, prevLogger, prevClient })

	cfg = &config.Config{
		Search:  config.SearchConfig{Debounce: 20 * time.Millisecond, DiscardStale: true},
		Poster:  config.PosterConfig{Enabled: false},
		Logging: config.LoggingConfig{Level: "info", Format: "console"},
	}
	logger = zerolog.Nop()

	var err error
	omdbClient, err = omdb.NewClient(server.URL, "key", logger)
	require.NoError(t, err)
}

func newTestCommand(out *syncBuffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd
}

func TestRunLookup(t *testing.T) {
	t.Run("output follows argument order", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(movieHandler(&hits, map[string]time.Duration{
			"Alien": 100 * time.Millisecond,
		}))
		defer server.Close()
		setupCommandGlobals(t, server)

		out := &syncBuffer{}
		err := runLookup(newTestCommand(out), []string{"Alien", "Heat"})
		require.NoError(t, err)

		got := out.String()
		alien := strings.Index(got, "» Alien")
		heat := strings.Index(got, "» Heat")
		require.NotEqual(t, -1, alien)
		require.NotEqual(t, -1, heat)
		assert.Less(t, alien, heat)
		assert.Contains(t, got, "Heat (1995)")
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("single title has no heading", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(movieHandler(&hits, nil))
		defer server.Close()
		setupCommandGlobals(t, server)

		out := &syncBuffer{}
		require.NoError(t, runLookup(newTestCommand(out), []string{"Heat"}))

		assert.NotContains(t, out.String(), "»")
		assert.Contains(t, out.String(), "Heat (1995)")
	})

	t.Run("failed titles are listed in the error", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(movieHandler(&hits, nil))
		defer server.Close()
		setupCommandGlobals(t, server)

		out := &syncBuffer{}
		err := runLookup(newTestCommand(out), []string{"Heat", "Broken"})
		require.Error(t, err)

		assert.Equal(t, "lookup failed for: Broken", err.Error())
		assert.Contains(t, out.String(), "Heat (1995)")
		assert.Contains(t, out.String(), "Could not reach the movie service")
	})

	t.Run("blank titles are skipped", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(movieHandler(&hits, nil))
		defer server.Close()
		setupCommandGlobals(t, server)

		out := &syncBuffer{}
		require.NoError(t, runLookup(newTestCommand(out), []string{"  ", "Heat"}))

		assert.Equal(t, int32(1), hits.Load())
		assert.Equal(t, 1, strings.Count(out.String(), "»"))
	})
}
