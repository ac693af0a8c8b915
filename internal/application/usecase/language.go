package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
)

// GetLanguageUseCase reports the active language and the available catalog.
type GetLanguageUseCase struct {
	provider port.LanguageProvider
}

// NewGetLanguageUseCase creates a new GetLanguageUseCase.
func NewGetLanguageUseCase(provider port.LanguageProvider) *GetLanguageUseCase {
	return &GetLanguageUseCase{provider: provider}
}

// Execute returns the active language tag and every available language.
func (uc *GetLanguageUseCase) Execute(ctx context.Context) (string, []port.LanguageInfo, error) {
	if uc == nil || uc.provider == nil {
		return "", nil, fmt.Errorf("language provider is nil")
	}
	return uc.provider.Language(ctx), uc.provider.Languages(ctx), nil
}

// SetLanguageUseCase switches and persists the console language.
type SetLanguageUseCase struct {
	switcher port.LanguageSwitcher
}

// NewSetLanguageUseCase creates a new SetLanguageUseCase.
func NewSetLanguageUseCase(switcher port.LanguageSwitcher) *SetLanguageUseCase {
	return &SetLanguageUseCase{switcher: switcher}
}

// Execute switches the console language. The switcher rejects tags without a
// message catalog.
func (uc *SetLanguageUseCase) Execute(ctx context.Context, tag string) error {
	if uc == nil || uc.switcher == nil {
		return fmt.Errorf("language switcher is nil")
	}

	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("language tag is required")
	}

	return uc.switcher.SetLanguage(ctx, tag)
}
