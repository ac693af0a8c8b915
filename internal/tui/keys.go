package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shiftedRunes are the US-layout characters that need shift to type. Consoles
// report them with the shift modifier set, so the terminal adapter does too.
const shiftedRunes = "~!@#$%^&*()_+{}|:\"<>?"

// translateKey converts a terminal key press into the console key event for
// it. ok is false for presses that have no wire form, such as pasted text.
func translateKey(msg tea.KeyMsg) (KeyPress, bool) {
	press := KeyPress{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeySpace:
		press.Key = "space"
		return press, true
	case tea.KeyEsc:
		press.Key = "escape"
		return press, true
	case tea.KeyEnter:
		press.Key = "enter"
		return press, true
	case tea.KeyTab:
		press.Key = "tab"
		return press, true
	case tea.KeyShiftTab:
		press.Key = "tab"
		press.Shift = true
		return press, true
	case tea.KeyBackspace:
		press.Key = "backspace"
		return press, true
	case tea.KeyUp:
		press.Key = "up"
		return press, true
	case tea.KeyDown:
		press.Key = "down"
		return press, true
	case tea.KeyLeft:
		press.Key = "left"
		return press, true
	case tea.KeyRight:
		press.Key = "right"
		return press, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyPress{}, false
		}
		r := msg.Runes[0]
		switch {
		case r == ' ':
			press.Key = "space"
		case unicode.IsUpper(r):
			press.Key = string(unicode.ToLower(r))
			press.Shift = true
		case strings.ContainsRune(shiftedRunes, r):
			press.Key = string(r)
			press.Shift = true
		default:
			press.Key = string(r)
		}
		return press, true
	}

	// Modifier chords arrive as their own key types; bubbletea names them
	// "ctrl+k", "alt+x" and so on.
	s := msg.String()
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			press.Ctrl = true
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "alt+"):
			press.Alt = true
			s = s[len("alt+"):]
		case strings.HasPrefix(s, "shift+"):
			press.Shift = true
			s = s[len("shift+"):]
		default:
			if s == "" {
				return KeyPress{}, false
			}
			press.Key = s
			return press, true
		}
	}
}

// monitorKeys are the keys the monitor handles locally. Everything else is
// forwarded to the gateway, which decides what fires.
type monitorKeys struct {
	Scroll  key.Binding
	Filter  key.Binding
	Quit    key.Binding
	Forward key.Binding
}

func defaultMonitorKeys() monitorKeys {
	return monitorKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Forward: key.NewBinding(
			key.WithKeys(""),
			key.WithHelp("other", "sent to gateway"),
		),
	}
}

// ShortHelp returns keybindings to show in compact help.
func (k monitorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Filter, k.Quit, k.Forward}
}

// FullHelp returns keybindings for expanded help.
func (k monitorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Filter},
		{k.Quit, k.Forward},
	}
}
