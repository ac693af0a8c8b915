package port

import (
	"context"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// KeymapEntry represents a single binding for presentation surfaces.
type KeymapEntry struct {
	Action       string `json:"action"`
	Description  string `json:"description"`
	Chord        string `json:"chord"`
	DefaultChord string `json:"default_chord"`
	IsCustom     bool   `json:"is_custom"`
}

// KeymapDocument represents the full keymap in registration order.
type KeymapDocument struct {
	Entries []KeymapEntry `json:"entries"`
}

// Keymap flattens the document into the ordered domain keymap.
func (d KeymapDocument) Keymap() entity.Keymap {
	keymap := make(entity.Keymap, 0, len(d.Entries))
	for _, e := range d.Entries {
		keymap = append(keymap, entity.KeymapEntry{
			Action:      e.Action,
			Chord:       e.Chord,
			Description: e.Description,
		})
	}
	return keymap
}

// SetBindingRequest represents a request to update a binding.
type SetBindingRequest struct {
	Action string `json:"action"`
	Chord  string `json:"chord"`
}

// ResetBindingRequest represents a request to reset a binding to its default.
type ResetBindingRequest struct {
	Action string `json:"action"`
}

// KeymapConflict represents a detected chord conflict.
type KeymapConflict struct {
	ConflictingAction string `json:"conflicting_action"`
	Chord             string `json:"chord"`
}

// KeymapProvider provides keymap configuration data.
type KeymapProvider interface {
	GetKeymap(ctx context.Context) (KeymapDocument, error)
	GetDefaultKeymap(ctx context.Context) (KeymapDocument, error)
	CheckConflicts(ctx context.Context, action, chord string) ([]KeymapConflict, error)
}

// KeymapSaver persists keymap changes.
type KeymapSaver interface {
	SetBinding(ctx context.Context, req SetBindingRequest) error
	ResetBinding(ctx context.Context, req ResetBindingRequest) error
	ResetAllBindings(ctx context.Context) error
	ReplaceKeymap(ctx context.Context, bindings map[string]string) error
}
