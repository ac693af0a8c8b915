package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/loadtest"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
	"github.com/quarterdeckhq/quarterdeck/internal/tui/styles"
)

// Set via ldflags at build time.
var version = "dev"

var (
	flagMode     string
	flagURL      string
	flagToken    string
	flagWorkers  int
	flagRequests int
	flagDuration time.Duration
	flagRampUp   time.Duration
	flagThink    time.Duration
	flagTimeout  time.Duration
	flagScript   string
	flagLocale   string
)

var rootCmd = &cobra.Command{
	Use:   "quarterdeck-loadgen",
	Short: "Load generator for the quarterdeck gateway",
	Long: `quarterdeck-loadgen drives a quarterdeck gateway for capacity drills.

Two modes:
  ws    open one console session per worker and measure the round trip
        from key event to dispatch verdict (default)
  http  hammer the REST surface with a pooled client

A JavaScript scenario can override the traffic: define request(i) for
http mode or keyEvent(i) for ws mode. Return nothing to fall back to
the built-in mix for that iteration.

Examples:
  quarterdeck-loadgen --workers 50 --duration 30s
  quarterdeck-loadgen --mode http --requests 10000 --workers 20
  quarterdeck-loadgen --script drill.js --workers 10 --requests 5000`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", "ws", "ws or http")
	rootCmd.Flags().StringVar(&flagURL, "url", "", "gateway URL (default ws://127.0.0.1:8790/ws or http://127.0.0.1:8790)")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "gateway auth token")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 10, "concurrent workers")
	rootCmd.Flags().IntVar(&flagRequests, "requests", 0, "total request budget across workers (0 = run for --duration)")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 0, "stop after this long, whatever the budget says")
	rootCmd.Flags().DurationVar(&flagRampUp, "ramp-up", 0, "spread worker starts across this window")
	rootCmd.Flags().DurationVar(&flagThink, "think", 0, "pause between requests per worker")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "per-request timeout")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "JavaScript scenario file")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "en", "session locale for ws mode")
}

func run(cmd *cobra.Command, _ []string) error {
	log := logging.NewFromEnv()

	cfg := loadtest.Config{
		Mode:       loadtest.Mode(flagMode),
		Target:     flagURL,
		Token:      flagToken,
		Workers:    flagWorkers,
		Requests:   flagRequests,
		Duration:   flagDuration,
		RampUp:     flagRampUp,
		ThinkTime:  flagThink,
		Timeout:    flagTimeout,
		Locale:     flagLocale,
		ScriptPath: flagScript,
	}
	if cfg.Target == "" {
		switch cfg.Mode {
		case loadtest.ModeHTTP:
			cfg.Target = "http://127.0.0.1:8790"
		default:
			cfg.Target = "ws://127.0.0.1:8790/ws"
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var scenario *loadtest.Scenario
	if cfg.ScriptPath != "" {
		var err error
		scenario, err = loadtest.LoadScenario(cfg.ScriptPath)
		if err != nil {
			return err
		}
		log.Info().Str("scenario", scenario.Name()).Msg("loaded scenario")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("mode", string(cfg.Mode)).
		Str("target", cfg.Target).
		Int("workers", cfg.Workers).
		Int("requests", cfg.Requests).
		Dur("duration", cfg.Duration).
		Msg("starting load test")

	var (
		sum loadtest.Summary
		err error
	)
	switch cfg.Mode {
	case loadtest.ModeHTTP:
		sum, err = loadtest.NewHTTPRunner(cfg, scenario).Run(ctx)
	default:
		sum, err = loadtest.NewWSRunner(cfg, scenario).Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Println(loadtest.Render(styles.NewTheme(), cfg, sum))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
