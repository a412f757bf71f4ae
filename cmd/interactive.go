package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviepeek/search"
	"github.com/s0up4200/moviepeek/view"
)

const (
	cmdMore = ":more"
	cmdQuit = ":quit"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Type titles and see results as you go",
	Long: `Read titles from standard input, one per line. Each line replaces the
search field; the lookup runs once input has been quiet for the configured
debounce period.

Commands:
  :more   toggle extended details and the full plot
  :quit   exit (EOF works too)`,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// stops the reader below once we return
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := view.NewConsoleRenderer(cmd.OutOrStdout(), cfg.Logging.Color)
	v := newView(view.WithRenderer(renderer))

	session := search.NewSession(ctx, newPipeline(v), v, cfg.Search.Debounce, logger)
	session.OnReport(func(r search.Report) {
		logger.Debug().
			Str("query", r.Query).
			Str("state", r.State.String()).
			Bool("applied", r.Applied).
			Msg("Search finished")
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "Type a movie title (%s, %s).\n", cmdMore, cmdQuit)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Error().Err(err).Msg("Failed to read input")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			session.Close()
			return nil
		case line, ok := <-lines:
			if !ok {
				// let the last title finish before exiting
				session.Drain()
				return nil
			}
			switch strings.TrimSpace(line) {
			case cmdQuit:
				session.Close()
				return nil
			case cmdMore:
				session.ShowMore()
			default:
				session.Input(line)
			}
		}
	}
}
