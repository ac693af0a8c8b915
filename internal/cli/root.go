package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/build"
)

var (
	app       *App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "quarterdeck",
		Short: "Keyboard-first gateway for dispatch-floor operator consoles",
		Long: `Quarterdeck - the daemon behind keyboard-driven operator consoles.

Consoles connect over WebSocket, stream raw key events, and let the server
decide which shortcut fires. Bindings, language, and history live here, so
every console on the floor stays consistent.

Features:
  - Server-side shortcut dispatch with first-match-wins ordering
  - Hot-reloadable keymap (config file edits push to live consoles)
  - Text-entry suppression with an escape hatch for overlay dismissal
  - Per-session localization (English, French, German)
  - Action history with analytics and retention
  - Terminal monitor console and a load generator for drills

Use 'quarterdeck serve' to run the gateway, or explore the subcommands
for keymap, language, and history management.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "gen-docs":
				return nil
			}

			var err error
			app, err = NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
