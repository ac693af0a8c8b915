package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyPress
	}{
		{
			name: "lowercase rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}},
			want: KeyPress{Key: "d"},
		},
		{
			name: "uppercase rune becomes shift chord",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}},
			want: KeyPress{Key: "k", Shift: true},
		},
		{
			name: "question mark is a shifted character",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}},
			want: KeyPress{Key: "?", Shift: true},
		},
		{
			name: "alt rune keeps the modifier",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			want: KeyPress{Key: "x", Alt: true},
		},
		{
			name: "ctrl chord",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlK},
			want: KeyPress{Key: "k", Ctrl: true},
		},
		{
			name: "escape",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			want: KeyPress{Key: "escape"},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			want: KeyPress{Key: "space"},
		},
		{
			name: "space as a bare rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}},
			want: KeyPress{Key: "space"},
		},
		{
			name: "shift tab",
			msg:  tea.KeyMsg{Type: tea.KeyShiftTab},
			want: KeyPress{Key: "tab", Shift: true},
		},
		{
			name: "arrow key",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: KeyPress{Key: "up"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateKeyRejectsPastedText(t *testing.T) {
	_, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted text")})
	assert.False(t, ok)
}
