package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/cache"
	"github.com/quarterdeckhq/quarterdeck/internal/config"
	"github.com/quarterdeckhq/quarterdeck/internal/console"
	"github.com/quarterdeckhq/quarterdeck/internal/infrastructure/persistence/sqlite"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
	"github.com/quarterdeckhq/quarterdeck/internal/server"
	"github.com/quarterdeckhq/quarterdeck/internal/telemetry"
)

const readHeaderTimeout = 10 * time.Second

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the console gateway daemon",
	Long: `Run the quarterdeck daemon: the REST API plus the WebSocket endpoint
operator consoles connect to.

The daemon watches its config file, so keymap and language edits reach
live sessions without a restart. Stop it with SIGINT or SIGTERM; open
connections get a close frame and pending history writes are flushed.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides server.listen_addr)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	tel, err := telemetry.Init(ctx, cfg.Telemetry, app.BuildInfo.Version)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	prefs := cache.NewPrefCache(ctx, sqlite.NewPrefStore(app.DB))
	if err := prefs.Load(ctx); err != nil {
		return fmt.Errorf("load session prefs: %w", err)
	}

	hub := &server.Hub{
		Binder:         console.NewBinder(cfg.Input),
		Locales:        app.Locales,
		Prefs:          prefs,
		Metrics:        tel.Metrics,
		Keymaps:        usecase.NewGetKeymapUseCase(app.Keymaps),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	history := usecase.NewActionHistoryUseCase(app.Events, hub)
	hub.RecordAction = history.Record

	if removed, err := history.EnforceRetention(ctx, cfg.History.RetentionDays); err != nil {
		log.Warn().Err(err).Msg("failed to enforce history retention")
	} else if removed > 0 {
		log.Info().Int64("removed", removed).
			Int("retention_days", cfg.History.RetentionDays).
			Msg("pruned expired action events")
	}

	srv := &server.Server{
		Version:      app.BuildInfo.Version,
		Manager:      app.Manager,
		Hub:          hub,
		Keymaps:      usecase.NewGetKeymapUseCase(app.Keymaps),
		SetBinding:   usecase.NewSetBindingUseCase(app.Keymaps, app.Keymaps),
		ResetBinding: usecase.NewResetBindingUseCase(app.Keymaps),
		ResetAll:     usecase.NewResetAllBindingsUseCase(app.Keymaps),
		Languages:    usecase.NewGetLanguageUseCase(app.Locales),
		SetLanguage:  usecase.NewSetLanguageUseCase(app.Locales),
		History:      history,
	}

	// Config file edits push straight into live sessions.
	app.Manager.OnConfigChange(func(c *config.Config) {
		app.Locales.SyncFromConfig(c)
		hub.Rebind(ctx)
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watcher failed to start; keymap edits need a restart")
	}

	addr := cfg.Server.ListenAddr
	if serveListen != "" {
		addr = serveListen
	}

	// Request contexts carry the logger but not the signal cancellation;
	// Shutdown drains in-flight requests.
	baseCtx := app.Ctx()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Int("pid", os.Getpid()).Msg("console gateway listening")
		errCh <- httpServer.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		// WebSocket connections are hijacked, so Shutdown never sees them;
		// the hub closes them itself.
		hub.Close()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("shutdown http server: %w", err)
		}
		cancel()
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	if err := prefs.Flush(); err != nil {
		log.Warn().Err(err).Msg("failed to flush session prefs")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		log.Warn().Err(err).Msg("telemetry flush failed")
	}
	return runErr
}
