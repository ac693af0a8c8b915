package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
)

// ExportKeymapUseCase serializes the active keymap for backup or sharing.
type ExportKeymapUseCase struct {
	provider port.KeymapProvider
}

// NewExportKeymapUseCase creates a new ExportKeymapUseCase.
func NewExportKeymapUseCase(provider port.KeymapProvider) *ExportKeymapUseCase {
	return &ExportKeymapUseCase{provider: provider}
}

// Execute returns the keymap document as indented JSON with a trailing
// newline, suitable for writing straight to a file or stdout.
func (uc *ExportKeymapUseCase) Execute(ctx context.Context) ([]byte, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keymap provider is nil")
	}

	doc, err := uc.provider.GetKeymap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get keymap: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode keymap: %w", err)
	}
	return append(data, '\n'), nil
}
