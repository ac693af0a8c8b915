package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

func newTestGateway(t *testing.T) *KeymapGateway {
	t.Helper()
	setTestDirs(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	return NewKeymapGateway(manager)
}

func TestKeymapGatewayGetKeymap(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)

	catalog := entity.ActionCatalog()
	require.Len(t, doc.Entries, len(catalog))

	// Entries come back in catalog order with default chords
	for i, spec := range catalog {
		assert.Equal(t, spec.Name, doc.Entries[i].Action)
		assert.Equal(t, spec.DefaultChord, doc.Entries[i].Chord)
		assert.Equal(t, spec.DefaultChord, doc.Entries[i].DefaultChord)
		assert.False(t, doc.Entries[i].IsCustom)
	}

	// The flattened domain keymap preserves the order
	keymap := doc.Keymap()
	require.Len(t, keymap, len(catalog))
	assert.Equal(t, entity.ActionOverlayDismiss, keymap[0].Action)
}

func TestKeymapGatewaySetBinding(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	err := gateway.SetBinding(ctx, port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"})
	require.NoError(t, err)

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)

	for _, entry := range doc.Entries {
		if entry.Action == entity.ActionViewTasks {
			assert.Equal(t, "shift+t", entry.Chord)
			assert.True(t, entry.IsCustom)
		}
	}
}

func TestKeymapGatewaySetBindingUnknownAction(t *testing.T) {
	gateway := newTestGateway(t)

	err := gateway.SetBinding(context.Background(), port.SetBindingRequest{Action: "no.such.action", Chord: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestKeymapGatewaySetBindingRejectsConflict(t *testing.T) {
	gateway := newTestGateway(t)

	// "d" already belongs to view.dispatches
	err := gateway.SetBinding(context.Background(), port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chord")
}

func TestKeymapGatewaySetBindingUnbinds(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, gateway.SetBinding(ctx, port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: ""}))

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)
	for _, entry := range doc.Entries {
		if entry.Action == entity.ActionViewTasks {
			assert.Empty(t, entry.Chord)
			assert.True(t, entry.IsCustom)
		}
	}
}

func TestKeymapGatewayCheckConflicts(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	conflicts, err := gateway.CheckConflicts(ctx, entity.ActionViewTasks, "d")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, entity.ActionViewDispatches, conflicts[0].ConflictingAction)
	assert.Equal(t, "d", conflicts[0].Chord)

	// An action never conflicts with its own binding
	conflicts, err = gateway.CheckConflicts(ctx, entity.ActionViewDispatches, "d")
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Chord spellings are canonicalized before comparison
	conflicts, err = gateway.CheckConflicts(ctx, entity.ActionViewTasks, "control+k")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, entity.ActionPaletteToggle, conflicts[0].ConflictingAction)

	_, err = gateway.CheckConflicts(ctx, entity.ActionViewTasks, "ctrl+")
	require.Error(t, err)
}

func TestKeymapGatewayResetBinding(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, gateway.SetBinding(ctx, port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}))
	require.NoError(t, gateway.ResetBinding(ctx, port.ResetBindingRequest{Action: entity.ActionViewTasks}))

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)
	for _, entry := range doc.Entries {
		if entry.Action == entity.ActionViewTasks {
			assert.Equal(t, "t", entry.Chord)
			assert.False(t, entry.IsCustom)
		}
	}

	err = gateway.ResetBinding(ctx, port.ResetBindingRequest{Action: "no.such.action"})
	require.Error(t, err)
}

func TestKeymapGatewayResetAllBindings(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, gateway.SetBinding(ctx, port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}))
	require.NoError(t, gateway.SetBinding(ctx, port.SetBindingRequest{Action: entity.ActionViewRefresh, Chord: ""}))

	require.NoError(t, gateway.ResetAllBindings(ctx))

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)
	for _, entry := range doc.Entries {
		assert.Equal(t, entry.DefaultChord, entry.Chord, "action %s", entry.Action)
		assert.False(t, entry.IsCustom, "action %s", entry.Action)
	}
}

func TestKeymapGatewayReplaceKeymap(t *testing.T) {
	gateway := newTestGateway(t)
	ctx := context.Background()

	err := gateway.ReplaceKeymap(ctx, map[string]string{
		entity.ActionViewTasks:   "shift+t",
		entity.ActionViewRefresh: "f5",
	})
	require.NoError(t, err)

	doc, err := gateway.GetKeymap(ctx)
	require.NoError(t, err)
	for _, entry := range doc.Entries {
		switch entry.Action {
		case entity.ActionViewTasks:
			assert.Equal(t, "shift+t", entry.Chord)
		case entity.ActionViewRefresh:
			assert.Equal(t, "f5", entry.Chord)
		default:
			// Unlisted actions return to defaults
			assert.Equal(t, entry.DefaultChord, entry.Chord)
		}
	}

	err = gateway.ReplaceKeymap(ctx, map[string]string{"no.such.action": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}
