package config

import (
	"context"
	"fmt"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/input"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

// KeymapGateway implements port.KeymapProvider and port.KeymapSaver on top of
// the configuration manager.
type KeymapGateway struct {
	mgr *Manager
}

// NewKeymapGateway creates a new KeymapGateway.
func NewKeymapGateway(mgr *Manager) *KeymapGateway {
	return &KeymapGateway{mgr: mgr}
}

// GetKeymap returns every catalog action with its bound chord, in
// registration order.
func (g *KeymapGateway) GetKeymap(ctx context.Context) (port.KeymapDocument, error) {
	log := logging.FromContext(ctx)
	cfg := g.mgr.Get()
	log.Debug().Msg("keymap gateway: fetching keymap")

	return buildKeymapDocument(cfg.Keymap), nil
}

// GetDefaultKeymap returns the shipped keymap.
func (g *KeymapGateway) GetDefaultKeymap(ctx context.Context) (port.KeymapDocument, error) {
	log := logging.FromContext(ctx)
	doc := buildKeymapDocument(DefaultKeymap())

	log.Debug().Int("entries", len(doc.Entries)).Msg("keymap gateway: returning default keymap")
	return doc, nil
}

// CheckConflicts reports other actions already bound to the chord.
func (g *KeymapGateway) CheckConflicts(ctx context.Context, action, chordSpec string) ([]port.KeymapConflict, error) {
	log := logging.FromContext(ctx)

	chord, ok := input.ParseChord(chordSpec)
	if !ok {
		return nil, fmt.Errorf("chord %q does not parse", chordSpec)
	}
	canonical := chord.String()

	cfg := g.mgr.Get()
	var conflicts []port.KeymapConflict
	for otherAction, otherSpec := range cfg.Keymap {
		if otherAction == action || otherSpec == "" {
			continue
		}
		otherChord, ok := input.ParseChord(otherSpec)
		if !ok {
			continue
		}
		if otherChord.String() == canonical {
			conflicts = append(conflicts, port.KeymapConflict{
				ConflictingAction: otherAction,
				Chord:             canonical,
			})
		}
	}

	if len(conflicts) > 0 {
		log.Warn().Int("conflicts", len(conflicts)).Str("chord", canonical).Msg("keymap gateway: conflicts detected")
	}
	return conflicts, nil
}

// SetBinding updates a single binding. An empty chord unbinds the action.
func (g *KeymapGateway) SetBinding(ctx context.Context, req port.SetBindingRequest) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", req.Action).Str("chord", req.Chord).Msg("keymap gateway: setting binding")

	if _, ok := entity.LookupAction(req.Action); !ok {
		return fmt.Errorf("unknown action: %s", req.Action)
	}

	return g.mgr.Update(func(c *Config) {
		c.Keymap[req.Action] = req.Chord
	})
}

// ResetBinding resets a binding to its default value.
func (g *KeymapGateway) ResetBinding(ctx context.Context, req port.ResetBindingRequest) error {
	log := logging.FromContext(ctx)
	log.Info().Str("action", req.Action).Msg("keymap gateway: resetting binding to default")

	spec, ok := entity.LookupAction(req.Action)
	if !ok {
		return fmt.Errorf("unknown action: %s", req.Action)
	}

	return g.mgr.Update(func(c *Config) {
		c.Keymap[req.Action] = spec.DefaultChord
	})
}

// ResetAllBindings resets every binding to its default value.
func (g *KeymapGateway) ResetAllBindings(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Info().Msg("keymap gateway: resetting all bindings to defaults")

	return g.mgr.Update(func(c *Config) {
		c.Keymap = DefaultKeymap()
	})
}

// ReplaceKeymap installs the given bindings. Actions the map does not list
// return to their defaults.
func (g *KeymapGateway) ReplaceKeymap(ctx context.Context, bindings map[string]string) error {
	log := logging.FromContext(ctx)
	log.Info().Int("bindings", len(bindings)).Msg("keymap gateway: replacing keymap")

	for action := range bindings {
		if _, ok := entity.LookupAction(action); !ok {
			return fmt.Errorf("unknown action: %s", action)
		}
	}

	return g.mgr.Update(func(c *Config) {
		keymap := DefaultKeymap()
		for action, chord := range bindings {
			keymap[action] = chord
		}
		c.Keymap = keymap
	})
}

// buildKeymapDocument assembles entries in catalog order.
func buildKeymapDocument(bindings map[string]string) port.KeymapDocument {
	catalog := entity.ActionCatalog()
	entries := make([]port.KeymapEntry, 0, len(catalog))

	for _, spec := range catalog {
		chord := bindings[spec.Name]
		entries = append(entries, port.KeymapEntry{
			Action:       spec.Name,
			Description:  spec.Description,
			Chord:        chord,
			DefaultChord: spec.DefaultChord,
			IsCustom:     chord != spec.DefaultChord,
		})
	}

	return port.KeymapDocument{Entries: entries}
}
