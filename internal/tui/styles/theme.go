// Package styles provides the lipgloss theme shared by quarterdeck's
// terminal front ends.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the base colors a Theme derives its styles from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Error          string
	Warning        string
}

// DefaultDarkPalette returns the stock dark console colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Error:          "#ef4444",
		Warning:        "#f59e0b",
	}
}

// Theme holds lipgloss colors and the styles derived from them.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color

	// Text styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Component styles
	Badge        lipgloss.Style
	BadgeMuted   lipgloss.Style
	BadgeWarning lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from the default dark palette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Error),
		Warning:        lipgloss.Color(p.Warning),
	}
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.BadgeWarning = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Warning).
		Padding(0, 1)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
