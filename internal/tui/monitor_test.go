package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/i18n"
	"github.com/quarterdeckhq/quarterdeck/internal/tui/styles"
)

func newTestMonitor(t *testing.T) MonitorModel {
	t.Helper()

	locales, err := i18n.New(nil)
	require.NoError(t, err)

	m := NewMonitor(context.Background(), styles.NewTheme(), MonitorConfig{
		URL:     "ws://127.0.0.1:0/ws",
		Locales: locales,
	})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(MonitorModel)
}

func helloEnvelope() Envelope {
	return Envelope{
		Type:     EnvelopeHello,
		Protocol: 1,
		Session:  "4f6b2c1a-0000-0000-0000-000000000000",
		Language: "en",
		Message:  "Connected to quarterdeck as session 4f6b2c1a",
		Keymap: &port.KeymapDocument{Entries: []port.KeymapEntry{
			{
				Action:       entity.ActionMonitorPause,
				Description:  "action.monitor.pause",
				Chord:        "space",
				DefaultChord: "space",
			},
		}},
	}
}

func actionEnvelope(action, chord string) Envelope {
	return Envelope{
		Type: EnvelopeAction,
		Event: &entity.ActionEvent{
			ID:         1,
			SessionID:  "9a8b7c6d-0000-0000-0000-000000000000",
			Action:     action,
			Chord:      chord,
			Source:     "ws",
			OccurredAt: time.Now(),
		},
	}
}

func dispatchEnvelope(action string) Envelope {
	return Envelope{Type: EnvelopeDispatch, Seq: 1, Consumed: true, Action: action}
}

func TestMonitorAppliesHello(t *testing.T) {
	m := newTestMonitor(t)

	m = m.applyEnvelope(helloEnvelope())

	assert.True(t, m.connected)
	assert.Equal(t, "en", m.lang)
	assert.Len(t, m.keymap.Entries, 1)
	assert.Contains(t, m.status, "Connected to quarterdeck")
}

func TestMonitorPauseBuffersFeed(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())

	m = m.applyEnvelope(actionEnvelope(entity.ActionViewTasks, "t"))
	require.Len(t, m.entries, 1)

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionMonitorPause))
	require.True(t, m.paused)

	m = m.applyEnvelope(actionEnvelope(entity.ActionViewWorkers, "w"))
	assert.Len(t, m.entries, 1, "paused feed must not grow")
	assert.Len(t, m.buffered, 1)

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionMonitorPause))
	require.False(t, m.paused)
	require.Len(t, m.entries, 2)
	assert.Equal(t, entity.ActionViewWorkers, m.entries[0].action, "buffered events surface newest first")
	assert.Empty(t, m.buffered)
}

func TestMonitorHelpOverlayFollowsDispatches(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionHelpToggle))
	assert.True(t, m.showHelp)

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionOverlayDismiss))
	assert.False(t, m.showHelp)
}

func TestMonitorEscapeVerdictClosesFocusedFilter(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())
	m.filter.Focus()

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionOverlayDismiss))

	assert.False(t, m.filter.Focused())
}

func TestMonitorLanguagePushRelabelsChrome(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())

	m = m.applyEnvelope(Envelope{
		Type:     EnvelopeLanguage,
		Language: "fr",
		Message:  "Langue définie sur fr",
	})

	assert.Equal(t, "fr", m.lang)
	assert.Contains(t, m.View(), "Moniteur Quarterdeck")
}

func TestMonitorFilterNarrowsRows(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())
	m = m.applyEnvelope(actionEnvelope(entity.ActionViewTasks, "t"))
	m = m.applyEnvelope(actionEnvelope(entity.ActionPaletteToggle, "ctrl+k"))

	m.filter.SetValue("palette")

	rows := m.visibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, entity.ActionPaletteToggle, rows[0][1])
}

func TestMonitorViewShowsPausedBadge(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())
	m = m.applyEnvelope(dispatchEnvelope(entity.ActionMonitorPause))

	assert.Contains(t, m.View(), "paused")
}

func TestMonitorViewRefreshClearsFeed(t *testing.T) {
	m := newTestMonitor(t)
	m = m.applyEnvelope(helloEnvelope())
	m = m.applyEnvelope(actionEnvelope(entity.ActionViewTasks, "t"))
	require.NotEmpty(t, m.entries)

	m = m.applyEnvelope(dispatchEnvelope(entity.ActionViewRefresh))

	assert.Empty(t, m.entries)
	assert.Equal(t, "Feed cleared", m.status)
}
