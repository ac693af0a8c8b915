// Package input provides keyboard shortcut matching and dispatch for
// operator console sessions.
package input

import (
	"strings"
	"unicode/utf8"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

// ModNone indicates no modifier is required.
const ModNone Modifier = 0

const (
	// ModCtrl indicates the Control key (or the platform meta key, which
	// event producers fold into ctrl) must be pressed.
	ModCtrl Modifier = 1 << iota
	// ModShift indicates the Shift key must be pressed.
	ModShift
	// ModAlt indicates the Alt key must be pressed.
	ModAlt
)

// modifierMask filters out anything beyond the three supported modifiers.
const modifierMask = ModCtrl | ModShift | ModAlt

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// keyNameAliases maps accepted key spellings to their canonical name.
// Canonical names follow the web KeyboardEvent.key values, lowercased,
// with the single space character written out as "space".
var keyNameAliases = map[string]string{
	"escape":     "escape",
	"esc":        "escape",
	"return":     "enter",
	"enter":      "enter",
	"tab":        "tab",
	"space":      "space",
	"spacebar":   "space",
	"backspace":  "backspace",
	"delete":     "delete",
	"del":        "delete",
	"home":       "home",
	"end":        "end",
	"pageup":     "pageup",
	"page_up":    "pageup",
	"pagedown":   "pagedown",
	"page_down":  "pagedown",
	"left":       "arrowleft",
	"arrowleft":  "arrowleft",
	"right":      "arrowright",
	"arrowright": "arrowright",
	"up":         "arrowup",
	"arrowup":    "arrowup",
	"down":       "arrowdown",
	"arrowdown":  "arrowdown",
	"f1":         "f1",
	"f2":         "f2",
	"f3":         "f3",
	"f4":         "f4",
	"f5":         "f5",
	"f6":         "f6",
	"f7":         "f7",
	"f8":         "f8",
	"f9":         "f9",
	"f10":        "f10",
	"f11":        "f11",
	"f12":        "f12",
	"plus":       "+",
	"minus":      "-",
	"equal":      "=",
}

// Chord represents a single key combination.
type Chord struct {
	Key       string   // Canonical key name (e.g. "d", "escape", "?")
	Modifiers Modifier // Combined modifiers
}

// NormalizeKey maps a raw event key to its canonical name. Unknown keys pass
// through lowercased so they can still be compared case-insensitively; they
// simply never match a definition unless one was registered for them.
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	lower := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := keyNameAliases[lower]; ok {
		return canonical
	}
	return lower
}

// ParseChord converts a config key string like "ctrl+k" to a Chord.
// Returns false if the string cannot be parsed.
func ParseChord(s string) (Chord, bool) {
	if s == "" {
		return Chord{}, false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Chord{}, false
	}
	if s == "+" {
		return Chord{Key: "+", Modifiers: ModNone}, true
	}

	parts := strings.Split(s, "+")

	var modifiers Modifier
	var keyPart string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lower := strings.ToLower(part)
		switch lower {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt":
			modifiers |= ModAlt
		case "meta", "cmd", "super":
			// The platform meta key is folded into ctrl, matching the
			// event model.
			modifiers |= ModCtrl
		default:
			if keyPart != "" {
				return Chord{}, false
			}
			keyPart = part
		}
	}

	// Allow parsing "ctrl++" / "alt+shift++" where the key is "+".
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}

	if keyPart == "" {
		return Chord{}, false
	}

	// Treat uppercase single-letter keys as Shift+<letter>.
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
		keyPart = strings.ToLower(keyPart)
	}

	key, ok := canonicalKeyName(keyPart)
	if !ok {
		return Chord{}, false
	}

	return Chord{
		Key:       key,
		Modifiers: modifiers,
	}, true
}

// canonicalKeyName resolves a chord key token to its canonical name.
func canonicalKeyName(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	if canonical, ok := keyNameAliases[strings.ToLower(s)]; ok {
		return canonical, true
	}

	// Any single character is a valid key (letters, digits, punctuation).
	if utf8.RuneCountInString(s) == 1 {
		return strings.ToLower(s), true
	}

	return "", false
}

// String renders the chord in the config notation accepted by ParseChord,
// e.g. "ctrl+shift+k" or "escape".
func (c Chord) String() string {
	var parts []string
	if c.Modifiers.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if c.Modifiers.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if c.Modifiers.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}
