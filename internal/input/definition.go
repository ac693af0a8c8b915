package input

// Definition binds a keyboard chord to an action.
//
// A definition matches an event only when the key matches case-insensitively
// and every modifier requirement holds exactly: a definition that requires
// ctrl only matches events with ctrl held, and a definition that does not
// require ctrl only matches events without it. The same applies to shift
// and alt independently.
type Definition struct {
	// Key is the key name to match, compared case-insensitively after
	// canonical normalization. A definition with an empty key never matches.
	Key string

	// Modifiers is the exact modifier combination the event must carry.
	Modifiers Modifier

	// Action runs when the definition matches. It receives no arguments
	// and reports nothing back; a definition with a nil action never
	// matches.
	Action func()

	// Description is a short human-readable label, e.g. "Toggle help".
	Description string

	// BypassTextEntry lets the definition match even when the event
	// targets a text-entry surface. Used for keys like escape that must
	// work while an input field has focus.
	BypassTextEntry bool
}

// Matches reports whether the definition applies to ev. All four predicates
// must hold: key equality plus one exact check per modifier.
func (d Definition) Matches(ev KeyEvent) bool {
	if d.Key == "" || d.Action == nil {
		return false
	}
	if ev.TextEntry && !d.BypassTextEntry {
		return false
	}
	if NormalizeKey(d.Key) != NormalizeKey(ev.Key) {
		return false
	}
	if d.Modifiers.Has(ModCtrl) != ev.Ctrl {
		return false
	}
	if d.Modifiers.Has(ModShift) != ev.Shift {
		return false
	}
	if d.Modifiers.Has(ModAlt) != ev.Alt {
		return false
	}
	return true
}
