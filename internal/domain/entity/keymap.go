package entity

// KeymapEntry binds a console action to a keyboard chord.
type KeymapEntry struct {
	Action      string `json:"action"`
	Chord       string `json:"chord"`
	Description string `json:"description"`
}

// Keymap is an ordered list of bindings. Order is significant: when two
// entries bind the same chord, the earlier entry wins at dispatch time.
type Keymap []KeymapEntry

// ChordFor returns the chord bound to action, if any.
func (k Keymap) ChordFor(action string) (string, bool) {
	for _, entry := range k {
		if entry.Action == action {
			return entry.Chord, true
		}
	}
	return "", false
}

// Actions returns the bound action identifiers in keymap order.
func (k Keymap) Actions() []string {
	actions := make([]string, 0, len(k))
	for _, entry := range k {
		actions = append(actions, entry.Action)
	}
	return actions
}

// WithBinding returns a copy of the keymap with action bound to chord.
// An existing entry for the action is updated in place; otherwise a new
// entry is appended at the end, giving it the lowest dispatch priority.
func (k Keymap) WithBinding(action, chord, description string) Keymap {
	out := make(Keymap, len(k))
	copy(out, k)
	for i := range out {
		if out[i].Action == action {
			out[i].Chord = chord
			if description != "" {
				out[i].Description = description
			}
			return out
		}
	}
	return append(out, KeymapEntry{Action: action, Chord: chord, Description: description})
}

// Without returns a copy of the keymap with the entry for action removed.
func (k Keymap) Without(action string) Keymap {
	out := make(Keymap, 0, len(k))
	for _, entry := range k {
		if entry.Action != action {
			out = append(out, entry)
		}
	}
	return out
}
