package input

// KeyEvent is a single key press as reported by an event source.
//
// Key carries the name of the pressed key using the canonical lowercase
// naming produced by NormalizeKey. Producers that distinguish a meta or
// command key fold it into Ctrl before constructing the event, so matching
// never has to care about the difference.
type KeyEvent struct {
	// Key is the pressed key name, e.g. "d", "?", "escape", "f5".
	Key string

	// Ctrl reports whether the control key (or platform meta key) was held.
	Ctrl bool

	// Shift reports whether the shift key was held.
	Shift bool

	// Alt reports whether the alt key was held.
	Alt bool

	// TextEntry reports whether the event targets a text-entry surface
	// such as an input field or editable region. Shortcuts are suppressed
	// for these events unless a definition opts out via BypassTextEntry.
	TextEntry bool
}

// Modifiers folds the event's modifier flags into a Modifier bitmask.
func (ev KeyEvent) Modifiers() Modifier {
	var m Modifier
	if ev.Ctrl {
		m |= ModCtrl
	}
	if ev.Shift {
		m |= ModShift
	}
	if ev.Alt {
		m |= ModAlt
	}
	return m
}
