// Package console binds keymaps to live dispatchers, one per operator
// session.
package console

import (
	"context"

	"github.com/quarterdeckhq/quarterdeck/internal/config"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/input"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

// OnAction receives a fired action and the canonical chord that triggered it.
// It runs synchronously inside dispatch, so implementations must not block.
type OnAction func(action, chord string)

// Binder turns keymaps into ordered dispatcher definitions.
//
// The definition bound to the configured escape key (unmodified) is flagged
// to bypass text-entry suppression, so an operator can always dismiss
// overlays while an input field has focus.
type Binder struct {
	escapeKey    string
	escapeBypass bool
}

// NewBinder creates a binder from the input configuration.
func NewBinder(cfg config.InputConfig) *Binder {
	key := cfg.EscapeKey
	if key == "" {
		key = "escape"
	}
	return &Binder{
		escapeKey:    input.NormalizeKey(key),
		escapeBypass: cfg.EscapeBypass,
	}
}

// Bind builds definitions from keymap in list order. Entries with an empty
// chord are unbound and skipped; entries whose chord does not parse are
// skipped with a warning. Each definition's action is a closure that reports
// the fired action through fire.
func (b *Binder) Bind(ctx context.Context, keymap entity.Keymap, fire OnAction) []input.Definition {
	log := logging.FromContext(ctx)

	defs := make([]input.Definition, 0, len(keymap))
	for _, entry := range keymap {
		if entry.Chord == "" {
			continue
		}
		chord, ok := input.ParseChord(entry.Chord)
		if !ok {
			log.Warn().
				Str("action", entry.Action).
				Str("chord", entry.Chord).
				Msg("skipping binding with unparseable chord")
			continue
		}

		action := entry.Action
		canonical := chord.String()
		def := input.Definition{
			Key:         chord.Key,
			Modifiers:   chord.Modifiers,
			Description: entry.Description,
			Action: func() {
				if fire != nil {
					fire(action, canonical)
				}
			},
		}
		if b.escapeBypass && chord.Modifiers == input.ModNone && chord.Key == b.escapeKey {
			def.BypassTextEntry = true
		}
		defs = append(defs, def)
	}
	return defs
}
