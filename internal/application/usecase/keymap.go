package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// ErrChordConflict is returned by SetBinding when the requested chord is
// already bound to another action. First-match-wins dispatch would silently
// shadow one of the two, so the collision is rejected outright.
var ErrChordConflict = errors.New("chord conflict")

// GetKeymapUseCase retrieves the active keymap.
type GetKeymapUseCase struct {
	provider port.KeymapProvider
}

// NewGetKeymapUseCase creates a new GetKeymapUseCase.
func NewGetKeymapUseCase(provider port.KeymapProvider) *GetKeymapUseCase {
	return &GetKeymapUseCase{provider: provider}
}

// Execute retrieves the active keymap in catalog order.
func (uc *GetKeymapUseCase) Execute(ctx context.Context) (port.KeymapDocument, error) {
	if uc == nil || uc.provider == nil {
		return port.KeymapDocument{}, fmt.Errorf("keymap provider is nil")
	}
	return uc.provider.GetKeymap(ctx)
}

// SetBindingUseCase updates a single binding, rejecting chord conflicts.
type SetBindingUseCase struct {
	provider port.KeymapProvider
	saver    port.KeymapSaver
}

// NewSetBindingUseCase creates a new SetBindingUseCase.
func NewSetBindingUseCase(provider port.KeymapProvider, saver port.KeymapSaver) *SetBindingUseCase {
	return &SetBindingUseCase{provider: provider, saver: saver}
}

// Execute updates a binding. An empty chord unbinds the action; any other
// chord must not collide with an existing binding.
func (uc *SetBindingUseCase) Execute(ctx context.Context, req port.SetBindingRequest) error {
	if uc == nil || uc.provider == nil || uc.saver == nil {
		return fmt.Errorf("keymap ports are nil")
	}

	if err := validateBindingAction(req.Action); err != nil {
		return err
	}

	if req.Chord != "" {
		conflicts, err := uc.provider.CheckConflicts(ctx, req.Action, req.Chord)
		if err != nil {
			return fmt.Errorf("failed to check conflicts: %w", err)
		}
		if len(conflicts) > 0 {
			return fmt.Errorf("chord %q is already bound to %s: %w", req.Chord, conflicts[0].ConflictingAction, ErrChordConflict)
		}
	}

	return uc.saver.SetBinding(ctx, req)
}

// ResetBindingUseCase restores a single binding to its default chord.
type ResetBindingUseCase struct {
	saver port.KeymapSaver
}

// NewResetBindingUseCase creates a new ResetBindingUseCase.
func NewResetBindingUseCase(saver port.KeymapSaver) *ResetBindingUseCase {
	return &ResetBindingUseCase{saver: saver}
}

// Execute restores a binding to its default chord.
func (uc *ResetBindingUseCase) Execute(ctx context.Context, req port.ResetBindingRequest) error {
	if uc == nil || uc.saver == nil {
		return fmt.Errorf("keymap saver is nil")
	}

	if err := validateBindingAction(req.Action); err != nil {
		return err
	}

	return uc.saver.ResetBinding(ctx, req)
}

// ResetAllBindingsUseCase restores the entire keymap to catalog defaults.
type ResetAllBindingsUseCase struct {
	saver port.KeymapSaver
}

// NewResetAllBindingsUseCase creates a new ResetAllBindingsUseCase.
func NewResetAllBindingsUseCase(saver port.KeymapSaver) *ResetAllBindingsUseCase {
	return &ResetAllBindingsUseCase{saver: saver}
}

// Execute restores every binding to its default chord.
func (uc *ResetAllBindingsUseCase) Execute(ctx context.Context) error {
	if uc == nil || uc.saver == nil {
		return fmt.Errorf("keymap saver is nil")
	}
	return uc.saver.ResetAllBindings(ctx)
}

func validateBindingAction(action string) error {
	if action == "" {
		return fmt.Errorf("action is required")
	}
	if _, ok := entity.LookupAction(action); !ok {
		return fmt.Errorf("unknown action: %s", action)
	}
	return nil
}
