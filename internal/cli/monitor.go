package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/tui"
	"github.com/quarterdeckhq/quarterdeck/internal/tui/styles"
)

var (
	monitorURL    string
	monitorToken  string
	monitorClient string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Tail fired actions from a running gateway",
	Long: `Monitor attaches to a running quarterdeck daemon as a console session and
tails every action fired across all connected consoles.

The monitor is itself a console: keys you press are sent to the gateway and
dispatched server-side. Space pauses the feed, ? shows the keymap, and /
filters the feed locally while the gateway suppresses shortcuts for the
typed text.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().StringVar(&monitorURL, "url", "",
		"gateway WebSocket URL (default derives from server.listen_addr)")
	monitorCmd.Flags().StringVar(&monitorToken, "token", "",
		"access token for a token-protected gateway")
	monitorCmd.Flags().StringVar(&monitorClient, "client", "monitor",
		"client id that keys the session's saved preferences")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	url := monitorURL
	if url == "" {
		url = "ws://" + app.Config.Server.ListenAddr + "/ws"
	}

	m := tui.NewMonitor(app.Ctx(), styles.NewTheme(), tui.MonitorConfig{
		URL:      url,
		Token:    monitorToken,
		ClientID: monitorClient,
		Locale:   app.Config.I18n.Language,
		Locales:  app.Locales,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run monitor: %w", err)
	}
	return nil
}
