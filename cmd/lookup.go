package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/moviepeek/search"
	"github.com/s0up4200/moviepeek/view"
)

// maxConcurrentLookups bounds parallel requests for multi-title lookups
const maxConcurrentLookups = 4

var noColor bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <title> [title...]",
	Short: "Look up one or more titles",
	Long: `Look up each title once, without debouncing, and print the result.

Several titles are fetched concurrently and printed in the order given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

type lookupResult struct {
	report search.Report
	view   *view.Controller
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]lookupResult, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, title := range args {
		g.Go(func() error {
			v := newView()
			report := newPipeline(v).Run(ctx, title)
			results[i] = lookupResult{report: report, view: v}
			// Failures are shown per title, not returned
			return nil
		})
	}
	g.Wait()

	out := cmd.OutOrStdout()
	renderer := view.NewConsoleRenderer(out, cfg.Logging.Color && !noColor)

	var failed []string
	for i, res := range results {
		if res.report.State == view.StateIdle {
			logger.Warn().Int("arg", i+1).Msg("Skipping empty title")
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "» %s\n", res.report.Query)
		}
		renderer.Render(res.view.Snapshot())

		if res.report.State == view.StateError {
			failed = append(failed, res.report.Query)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("lookup failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}
