package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
)

// ImportKeymapUseCase replaces the keymap from an exported JSON document.
type ImportKeymapUseCase struct {
	saver port.KeymapSaver
}

// NewImportKeymapUseCase creates a new ImportKeymapUseCase.
func NewImportKeymapUseCase(saver port.KeymapSaver) *ImportKeymapUseCase {
	return &ImportKeymapUseCase{saver: saver}
}

// Execute parses an exported keymap document and replaces the active keymap
// with its bindings. Actions the document does not mention return to their
// defaults. Returns the number of imported bindings.
func (uc *ImportKeymapUseCase) Execute(ctx context.Context, data []byte) (int, error) {
	if uc == nil || uc.saver == nil {
		return 0, fmt.Errorf("keymap saver is nil")
	}

	var doc port.KeymapDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("failed to parse keymap document: %w", err)
	}
	if len(doc.Entries) == 0 {
		return 0, fmt.Errorf("keymap document has no entries")
	}

	bindings := make(map[string]string, len(doc.Entries))
	for i, e := range doc.Entries {
		if e.Action == "" {
			return 0, fmt.Errorf("entry %d is missing an action", i)
		}
		bindings[e.Action] = e.Chord
	}

	if err := uc.saver.ReplaceKeymap(ctx, bindings); err != nil {
		return 0, fmt.Errorf("failed to replace keymap: %w", err)
	}
	return len(bindings), nil
}
