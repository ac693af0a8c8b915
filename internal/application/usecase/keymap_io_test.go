package usecase_test

import (
	"context"
	"encoding/json"
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

func TestExportKeymapUseCase_Execute(t *testing.T) {
	t.Run("emits the document as indented JSON", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		doc := port.KeymapDocument{
			Entries: []port.KeymapEntry{
				{Action: entity.ActionPaletteToggle, Chord: "ctrl+k", DefaultChord: "ctrl+k"},
			},
		}
		mockProvider.EXPECT().GetKeymap(mock.Anything).Return(doc, nil)

		uc := usecase.NewExportKeymapUseCase(mockProvider)

		// Act
		data, err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, byte('\n'), data[len(data)-1])

		var roundtrip port.KeymapDocument
		require.NoError(t, json.Unmarshal(data, &roundtrip))
		assert.Equal(t, doc, roundtrip)
	})

	t.Run("returns error when provider fails", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockKeymapProvider(t)
		mockProvider.EXPECT().GetKeymap(mock.Anything).Return(port.KeymapDocument{}, errors.New("provider error"))

		uc := usecase.NewExportKeymapUseCase(mockProvider)

		// Act
		_, err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get keymap")
	})
}

func TestImportKeymapUseCase_Execute(t *testing.T) {
	t.Run("replaces keymap from document", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		data := []byte(`{
  "entries": [
    {"action": "view.tasks", "chord": "shift+t"},
    {"action": "monitor.pause", "chord": ""}
  ]
}`)
		mockSaver.EXPECT().ReplaceKeymap(mock.Anything, map[string]string{
			"view.tasks":    "shift+t",
			"monitor.pause": "",
		}).Return(nil)

		uc := usecase.NewImportKeymapUseCase(mockSaver)

		// Act
		count, err := uc.Execute(context.Background(), data)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		mock.AssertExpectationsForObjects(t, mockSaver)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		uc := usecase.NewImportKeymapUseCase(mockSaver)

		// Act
		_, err := uc.Execute(context.Background(), []byte("{not json"))

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse keymap document")
	})

	t.Run("rejects empty document", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		uc := usecase.NewImportKeymapUseCase(mockSaver)

		// Act
		_, err := uc.Execute(context.Background(), []byte(`{"entries": []}`))

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entries")
	})

	t.Run("rejects entry without action", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		uc := usecase.NewImportKeymapUseCase(mockSaver)

		// Act
		_, err := uc.Execute(context.Background(), []byte(`{"entries": [{"chord": "x"}]}`))

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing an action")
	})

	t.Run("returns error when saver fails", func(t *testing.T) {
		// Arrange
		mockSaver := mocks.NewMockKeymapSaver(t)
		mockSaver.EXPECT().ReplaceKeymap(mock.Anything, mock.Anything).Return(errors.New("validation failed"))

		uc := usecase.NewImportKeymapUseCase(mockSaver)

		// Act
		_, err := uc.Execute(context.Background(), []byte(`{"entries": [{"action": "view.tasks", "chord": "t"}]}`))

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to replace keymap")
	})
}
