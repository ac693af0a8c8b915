package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/application/port/mocks"
	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

func TestGetKeymapUseCase_Execute(t *testing.T) {
	t.Run("returns keymap from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		expected := port.KeymapDocument{
			Entries: []port.KeymapEntry{
				{Action: entity.ActionPaletteToggle, Chord: "ctrl+k", DefaultChord: "ctrl+k"},
				{Action: entity.ActionViewTasks, Chord: "shift+t", DefaultChord: "t", IsCustom: true},
			},
		}
		mockProvider.EXPECT().GetKeymap(mock.Anything).Return(expected, nil)

		uc := usecase.NewGetKeymapUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, result)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns error when provider fails", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockProvider.EXPECT().GetKeymap(mock.Anything).Return(port.KeymapDocument{}, errors.New("provider error"))

		uc := usecase.NewGetKeymapUseCase(mockProvider)

		// Act
		_, err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider error")
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns error when provider is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewGetKeymapUseCase(nil)

		// Act
		_, err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider is nil")
	})
}

func TestSetBindingUseCase_Execute(t *testing.T) {
	t.Run("successfully sets binding", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}
		mockProvider.EXPECT().CheckConflicts(mock.Anything, req.Action, req.Chord).Return(nil, nil)
		mockSaver.EXPECT().SetBinding(mock.Anything, req).Return(nil)

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, mockProvider, mockSaver)
	})

	t.Run("rejects a conflicting chord without saving", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "d"}
		conflicts := []port.KeymapConflict{
			{ConflictingAction: entity.ActionViewDispatches, Chord: "d"},
		}
		mockProvider.EXPECT().CheckConflicts(mock.Anything, req.Action, req.Chord).Return(conflicts, nil)

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrChordConflict)
		assert.Contains(t, err.Error(), "already bound to "+entity.ActionViewDispatches)
		mock.AssertExpectationsForObjects(t, mockProvider, mockSaver)
	})

	t.Run("empty chord unbinds without a conflict check", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: entity.ActionMonitorPause, Chord: ""}
		mockSaver.EXPECT().SetBinding(mock.Anything, req).Return(nil)

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, mockProvider, mockSaver)
	})

	t.Run("returns error when conflict check fails", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}
		mockProvider.EXPECT().CheckConflicts(mock.Anything, req.Action, req.Chord).Return(nil, errors.New("bad chord"))

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check conflicts")
	})

	t.Run("returns error when saver fails", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}
		mockProvider.EXPECT().CheckConflicts(mock.Anything, req.Action, req.Chord).Return(nil, nil)
		mockSaver.EXPECT().SetBinding(mock.Anything, req).Return(errors.New("save error"))

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save error")
		mock.AssertExpectationsForObjects(t, mockProvider, mockSaver)
	})

	t.Run("returns error when ports are nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewSetBindingUseCase(nil, nil)
		req := port.SetBindingRequest{Action: entity.ActionViewTasks, Chord: "shift+t"}

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ports are nil")
	})

	t.Run("returns error when action is empty", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: "", Chord: "shift+t"}

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "action is required")
	})

	t.Run("returns error for unknown action", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.SetBindingRequest{Action: "view.plasma", Chord: "p"}

		uc := usecase.NewSetBindingUseCase(mockProvider, mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown action")
	})
}

func TestResetBindingUseCase_Execute(t *testing.T) {
	t.Run("successfully resets binding", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.ResetBindingRequest{Action: entity.ActionViewRefresh}
		mockSaver.EXPECT().ResetBinding(mock.Anything, req).Return(nil)

		uc := usecase.NewResetBindingUseCase(mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, mockSaver)
	})

	t.Run("returns error when saver fails", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.ResetBindingRequest{Action: entity.ActionViewRefresh}
		mockSaver.EXPECT().ResetBinding(mock.Anything, req).Return(errors.New("reset error"))

		uc := usecase.NewResetBindingUseCase(mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reset error")
		mock.AssertExpectationsForObjects(t, mockSaver)
	})

	t.Run("returns error when saver is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewResetBindingUseCase(nil)
		req := port.ResetBindingRequest{Action: entity.ActionViewRefresh}

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "saver is nil")
	})

	t.Run("returns error for unknown action", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		req := port.ResetBindingRequest{Action: "nope"}

		uc := usecase.NewResetBindingUseCase(mockSaver)

		// Act
		err := uc.Execute(context.Background(), req)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown action")
	})
}

func TestResetAllBindingsUseCase_Execute(t *testing.T) {
	t.Run("successfully resets all bindings", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		mockSaver.EXPECT().ResetAllBindings(mock.Anything).Return(nil)

		uc := usecase.NewResetAllBindingsUseCase(mockSaver)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, mockSaver)
	})

	t.Run("returns error when saver fails", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		mockSaver.EXPECT().ResetAllBindings(mock.Anything).Return(errors.New("reset all error"))

		uc := usecase.NewResetAllBindingsUseCase(mockSaver)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reset all error")
		mock.AssertExpectationsForObjects(t, mockSaver)
	})

	t.Run("returns error when saver is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewResetAllBindingsUseCase(nil)

		// Act
		err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "saver is nil")
	})
}
