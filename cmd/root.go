package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/s0up4200/moviepeek/config"
	"github.com/s0up4200/moviepeek/omdb"
	"github.com/s0up4200/moviepeek/search"
	"github.com/s0up4200/moviepeek/view"
)

var (
	cfgFile    string
	logLevel   string
	cfg        *config.Config
	logger     zerolog.Logger
	omdbClient *omdb.Client

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moviepeek",
	Short: "Look up movies on OMDb from the terminal",
	Long: `moviepeek searches the OMDb movie database by title and shows the
poster, plot, cast and ratings of the best match.

Use "lookup" for one-off searches or "interactive" to type titles and see
results as you go.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information for the version command.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(logLevel)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	logger = setupLogger(cfg.Logging)

	omdbClient, err = omdb.NewClient(cfg.OMDb.URL, cfg.OMDb.APIKey, logger,
		omdb.WithTimeout(cfg.OMDb.Timeout),
		omdb.WithPlot(cfg.OMDb.Plot),
		omdb.WithRateLimit(rate.Limit(cfg.OMDb.RateLimit), cfg.OMDb.Burst),
		omdb.WithUserAgent("moviepeek/"+appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newView builds a view controller from the loaded config
func newView(opts ...view.Option) *view.Controller {
	loader := view.ImageLoader(view.NopImageLoader{})
	if cfg.Poster.Enabled {
		loader = view.NewHTTPImageLoader(cfg.Poster.Timeout)
	}

	base := []view.Option{
		view.WithImageLoader(loader),
		view.WithStaleGuard(cfg.Search.DiscardStale),
	}
	return view.NewController(view.DefaultLayout(), logger, append(base, opts...)...)
}

func newPipeline(v search.View) *search.Pipeline {
	return search.NewPipeline(omdbClient, v, logger)
}
