package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// NewDefaultSpinner creates a themed spinner.
func NewDefaultSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return s
}

// NewStyledTable creates a themed table model. The width follows the terminal
// and is set later through table.Model.SetWidth.
func NewStyledTable(theme *Theme, columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
