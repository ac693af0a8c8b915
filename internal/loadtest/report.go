package loadtest

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quarterdeckhq/quarterdeck/internal/tui/styles"
)

// Render formats a run summary for the terminal.
func Render(theme *styles.Theme, cfg Config, sum Summary) string {
	label := theme.Subtle.Width(12)
	value := theme.Normal

	var b strings.Builder
	row := func(name, val string) {
		b.WriteString(label.Render(name))
		b.WriteString(" ")
		b.WriteString(value.Render(val))
		b.WriteString("\n")
	}

	row("Mode", string(cfg.Mode))
	row("Target", cfg.Target)
	if cfg.ScriptPath != "" {
		row("Scenario", cfg.ScriptPath)
	}
	row("Workers", fmt.Sprintf("%d", cfg.Workers))
	row("Completed", fmt.Sprintf("%d", sum.Completed))
	if sum.Errors > 0 {
		b.WriteString(label.Render("Errors"))
		b.WriteString(" ")
		b.WriteString(theme.WarningStyle.Render(fmt.Sprintf("%d (%.1f%%)", sum.Errors, sum.ErrorRate)))
		b.WriteString("\n")
	}
	row("Elapsed", fmtDuration(sum.Elapsed))
	row("Throughput", fmt.Sprintf("%.1f req/s", sum.RPS))
	b.WriteString("\n")
	row("Latency", fmt.Sprintf("min %s  avg %s  max %s",
		fmtDuration(sum.Min), fmtDuration(sum.Mean), fmtDuration(sum.Max)))
	row("Percentiles", fmt.Sprintf("p50 %s  p90 %s  p95 %s  p99 %s",
		fmtDuration(sum.P50), fmtDuration(sum.P90), fmtDuration(sum.P95), fmtDuration(sum.P99)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.BoxHeader.Render("Load Test Summary"),
		strings.TrimRight(b.String(), "\n"),
	)
	return theme.Box.Render(body)
}

// fmtDuration trims sub-microsecond noise from latency output.
func fmtDuration(d time.Duration) string {
	return d.Round(10 * time.Microsecond).String()
}
