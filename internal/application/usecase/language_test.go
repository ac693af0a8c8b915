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
)

func TestGetLanguageUseCase_Execute(t *testing.T) {
	t.Run("returns active language and catalog", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockLanguageProvider(t)
		available := []port.LanguageInfo{
			{Tag: "de", Name: "Deutsch"},
			{Tag: "en", Name: "English"},
			{Tag: "fr", Name: "Français"},
		}
		mockProvider.EXPECT().Language(mock.Anything).Return("fr")
		mockProvider.EXPECT().Languages(mock.Anything).Return(available)

		uc := usecase.NewGetLanguageUseCase(mockProvider)

		// Act
		current, langs, err := uc.Execute(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "fr", current)
		assert.Equal(t, available, langs)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns error when provider is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewGetLanguageUseCase(nil)

		// Act
		_, _, err := uc.Execute(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider is nil")
	})
}

func TestSetLanguageUseCase_Execute(t *testing.T) {
	t.Run("switches language through switcher", func(t *testing.T) {
		// Arrange
		mockSwitcher := mocks.NewMockLanguageSwitcher(t)
		mockSwitcher.EXPECT().SetLanguage(mock.Anything, "de").Return(nil)

		uc := usecase.NewSetLanguageUseCase(mockSwitcher)

		// Act
		err := uc.Execute(context.Background(), "de")

		// Assert
		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, mockSwitcher)
	})

	t.Run("returns error when switcher rejects tag", func(t *testing.T) {
		// Arrange
		mockSwitcher := mocks.NewMockLanguageSwitcher(t)
		mockSwitcher.EXPECT().SetLanguage(mock.Anything, "xx").Return(errors.New("unsupported language: xx"))

		uc := usecase.NewSetLanguageUseCase(mockSwitcher)

		// Act
		err := uc.Execute(context.Background(), "xx")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported language")
		mock.AssertExpectationsForObjects(t, mockSwitcher)
	})

	t.Run("returns error when tag is blank", func(t *testing.T) {
		// Arrange
		mockSwitcher := mocks.NewMockLanguageSwitcher(t)

		uc := usecase.NewSetLanguageUseCase(mockSwitcher)

		// Act
		err := uc.Execute(context.Background(), "   ")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tag is required")
	})

	t.Run("returns error when switcher is nil", func(t *testing.T) {
		// Arrange
		uc := usecase.NewSetLanguageUseCase(nil)

		// Act
		err := uc.Execute(context.Background(), "en")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "switcher is nil")
	})
}
