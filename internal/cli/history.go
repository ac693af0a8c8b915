package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultHistoryLimit = 20
	recentWindow        = 24 * time.Hour
)

var (
	historyLimit  int
	historyOffset int
	historyJSON   bool
	purgeDays     int
	purgeForce    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and prune the action history",
	Long: `Inspect the action history with various subcommands:
  list   - Show recently fired actions
  stats  - Show analytics (totals, last 24h, top actions)
  purge  - Delete events, either everything or older than a cutoff`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently fired actions",
	RunE:  runHistoryList,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show action history analytics",
	RunE:  runHistoryStats,
}

var historyPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete action events",
	Long: `Delete action events. Without --days everything goes; with --days only
events older than that many days are removed. This action cannot be undone.`,
	RunE: runHistoryPurge,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyPurgeCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "number of events to show")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "number of events to show")
	historyListCmd.Flags().IntVar(&historyOffset, "offset", 0, "number of events to skip")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")

	historyPurgeCmd.Flags().IntVar(&purgeDays, "days", 0, "only delete events older than this many days (0 = all)")
	historyPurgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "skip confirmation prompt")
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	events, err := app.History.Recent(app.Ctx(), historyLimit, historyOffset)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Println("No action events recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "WHEN\tACTION\tCHORD\tSESSION\tSOURCE")
	fmt.Fprintln(w, "----\t------\t-----\t-------\t------")

	for _, event := range events {
		when := event.OccurredAt.Local().Format("Jan 02 15:04:05")
		if time.Since(event.OccurredAt) < recentWindow {
			when = event.OccurredAt.Local().Format("15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			when, event.Action, event.Chord, shortSession(event.SessionID), event.Source)
	}
	return nil
}

func runHistoryStats(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	analytics, err := app.History.Analytics(app.Ctx())
	if err != nil {
		return fmt.Errorf("history analytics: %w", err)
	}

	fmt.Println("Action History Statistics")
	fmt.Println("=========================")
	fmt.Printf("Total events: %d\n", analytics.TotalEvents)
	fmt.Printf("Unique actions: %d\n", analytics.UniqueActions)
	fmt.Printf("Unique sessions: %d\n", analytics.UniqueSessions)
	fmt.Printf("Events in last 24h: %d\n", analytics.Last24h)

	if !analytics.FirstEvent.IsZero() && !analytics.LastEvent.IsZero() {
		fmt.Printf("Date range: %s to %s\n",
			analytics.FirstEvent.Local().Format("2006-01-02"),
			analytics.LastEvent.Local().Format("2006-01-02"))
	}

	if len(analytics.TopActions) == 0 {
		return nil
	}

	fmt.Println("\nTop actions:")
	fmt.Println("------------")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ACTION\tCOUNT\tLAST USED")
	fmt.Fprintln(w, "------\t-----\t---------")
	for _, top := range analytics.TopActions {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			top.Action, top.Count, top.LastUsed.Local().Format("Jan 02 15:04"))
	}
	return nil
}

func runHistoryPurge(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// Confirmation unless --force is used
	if !purgeForce {
		scope := "all action events"
		if purgeDays > 0 {
			scope = fmt.Sprintf("action events older than %d days", purgeDays)
		}
		fmt.Printf("This will permanently delete %s. Continue? [y/N]: ", scope)
		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "y" && response != "yes" {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	removed, err := app.History.Purge(app.Ctx(), purgeDays)
	if err != nil {
		return fmt.Errorf("purge history: %w", err)
	}

	fmt.Printf("Successfully deleted %d action events.\n", removed)
	return nil
}

// shortSession trims a uuid to its first segment for table display.
func shortSession(id string) string {
	if idx := strings.IndexByte(id, '-'); idx > 0 {
		return id[:idx]
	}
	return id
}
