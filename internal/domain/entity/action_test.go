package entity

import (
	"testing"

	"github.com/quarterdeckhq/quarterdeck/internal/input"
)

func TestActionCatalogChordsParse(t *testing.T) {
	seenNames := make(map[string]bool)
	seenChords := make(map[string]string)

	for _, spec := range ActionCatalog() {
		if spec.Name == "" {
			t.Fatal("catalog contains an action with an empty name")
		}
		if seenNames[spec.Name] {
			t.Fatalf("duplicate action name %q", spec.Name)
		}
		seenNames[spec.Name] = true

		chord, ok := input.ParseChord(spec.DefaultChord)
		if !ok {
			t.Fatalf("default chord %q for %s does not parse", spec.DefaultChord, spec.Name)
		}

		canonical := chord.String()
		if other, dup := seenChords[canonical]; dup {
			t.Fatalf("chord %q bound to both %s and %s", canonical, other, spec.Name)
		}
		seenChords[canonical] = spec.Name

		if spec.Description != "action."+spec.Name {
			t.Errorf("description key for %s = %q, want %q", spec.Name, spec.Description, "action."+spec.Name)
		}
	}
}

func TestLookupAction(t *testing.T) {
	spec, ok := LookupAction(ActionViewTasks)
	if !ok {
		t.Fatalf("LookupAction(%q) not found", ActionViewTasks)
	}
	if spec.DefaultChord != "t" {
		t.Errorf("DefaultChord = %q, want %q", spec.DefaultChord, "t")
	}

	if _, ok := LookupAction("no.such.action"); ok {
		t.Error("LookupAction returned ok for unknown action")
	}
}
