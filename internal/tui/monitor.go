package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/i18n"
	"github.com/quarterdeckhq/quarterdeck/internal/tui/styles"
)

// feedLimit bounds how many action events the monitor keeps.
const feedLimit = 250

// dialTimeout bounds the initial connection attempt.
const dialTimeout = 5 * time.Second

// chromeHeight is the vertical space around the feed table: header, filter,
// status, and help lines.
const chromeHeight = 8

// feedEntry is one fired action in the monitor feed.
type feedEntry struct {
	when    time.Time
	action  string
	chord   string
	session string
	source  string
}

type connectedMsg struct {
	client *Client
	err    error
}

type serverMsg struct {
	envelope Envelope
}

type serverGoneMsg struct{}

// MonitorConfig configures the monitor model.
type MonitorConfig struct {
	URL      string
	Token    string
	ClientID string
	Locale   string
	Locales  *i18n.Provider
}

// MonitorModel tails fired actions from the gateway. It attaches as a regular
// console session: every key it does not handle locally is sent to the
// gateway, and the dispatch verdicts drive the UI state, including pausing
// the feed and toggling the keymap overlay.
type MonitorModel struct {
	ctx     context.Context
	cfg     MonitorConfig
	theme   *styles.Theme
	locales *i18n.Provider

	client *Client

	spinner spinner.Model
	feed    table.Model
	filter  textinput.Model
	help    help.Model
	keys    monitorKeys

	entries  []feedEntry
	buffered []feedEntry
	keymap   port.KeymapDocument

	session   string
	lang      string
	view      string
	status    string
	statusErr bool

	connected bool
	paused    bool
	showHelp  bool

	width  int
	height int

	err error
}

var _ tea.Model = (*MonitorModel)(nil)

// NewMonitor builds the monitor model. The connection is dialed when the
// program starts.
func NewMonitor(ctx context.Context, theme *styles.Theme, cfg MonitorConfig) MonitorModel {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.CharLimit = 64

	columns := []table.Column{
		{Title: "TIME", Width: 9},
		{Title: "ACTION", Width: 18},
		{Title: "CHORD", Width: 10},
		{Title: "SESSION", Width: 10},
		{Title: "SOURCE", Width: 8},
	}

	m := MonitorModel{
		ctx:     ctx,
		cfg:     cfg,
		theme:   theme,
		locales: cfg.Locales,
		spinner: styles.NewDefaultSpinner(theme),
		feed:    styles.NewStyledTable(theme, columns, 12),
		filter:  filter,
		help:    styles.NewStyledHelp(theme),
		keys:    defaultMonitorKeys(),
		lang:    cfg.Locale,
	}
	if m.lang == "" {
		m.lang = "en"
	}
	return m
}

// Init starts the spinner and dials the gateway.
func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.connect)
}

// connect dials the gateway and subscribes to the action feed.
func (m MonitorModel) connect() tea.Msg {
	ctx, cancel := context.WithTimeout(m.ctx, dialTimeout)
	defer cancel()

	client, err := Dial(ctx, DialOptions{
		URL:      m.cfg.URL,
		Token:    m.cfg.Token,
		ClientID: m.cfg.ClientID,
		Locale:   m.cfg.Locale,
		Topics:   []string{"actions"},
	})
	return connectedMsg{client: client, err: err}
}

// awaitServer waits for the next server envelope.
func (m MonitorModel) awaitServer() tea.Msg {
	env, ok := <-m.client.Messages()
	if !ok {
		return serverGoneMsg{}
	}
	return serverMsg{envelope: env}
}

// Update handles terminal and gateway events.
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 4
		if w < 20 {
			w = 20
		}
		h := msg.Height - chromeHeight
		if h < 3 {
			h = 3
		}
		m.feed.SetWidth(w)
		m.feed.SetHeight(h)
		m.filter.Width = w - 4
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.connected || m.err != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case connectedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.client = msg.client
		return m, m.awaitServer

	case serverMsg:
		m = m.applyEnvelope(msg.envelope)
		return m, m.awaitServer

	case serverGoneMsg:
		if m.err == nil {
			m.err = errors.New(m.tr("monitor.disconnected"))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyEnvelope folds one server message into the model.
func (m MonitorModel) applyEnvelope(env Envelope) MonitorModel {
	switch env.Type {
	case EnvelopeHello:
		m.connected = true
		m.session = env.Session
		m.lang = env.Language
		m.view = env.View
		if env.Keymap != nil {
			m.keymap = *env.Keymap
		}
		m.status = env.Message
		m.statusErr = false

	case EnvelopeKeymap:
		if env.Keymap != nil {
			m.keymap = *env.Keymap
		}
		m.status = m.tr("server.keymap.updated")
		m.statusErr = false

	case EnvelopeAction:
		if env.Event == nil {
			return m
		}
		entry := feedEntry{
			when:    env.Event.OccurredAt,
			action:  env.Event.Action,
			chord:   env.Event.Chord,
			session: shortSession(env.Event.SessionID),
			source:  env.Event.Source,
		}
		if m.paused {
			m.buffered = append(m.buffered, entry)
			if len(m.buffered) > feedLimit {
				m.buffered = m.buffered[len(m.buffered)-feedLimit:]
			}
			return m
		}
		m = m.pushEntry(entry)

	case EnvelopeDispatch:
		m = m.applyDispatch(env)

	case EnvelopeLanguage:
		m.lang = env.Language
		m.status = env.Message
		m.statusErr = false

	case EnvelopeError:
		m.status = env.Error
		m.statusErr = true

	case EnvelopeSubscribed:
		// Nothing to render; the ack keeps the protocol symmetrical.
	}
	return m
}

// applyDispatch reacts to the gateway's verdict on a key this monitor sent.
func (m MonitorModel) applyDispatch(env Envelope) MonitorModel {
	if !env.Consumed {
		// Runes typed into the filter come back unconsumed; that is the
		// suppression working, not a missing binding.
		if !m.filter.Focused() {
			m.status = m.tr("monitor.unbound")
			m.statusErr = false
		}
		return m
	}

	switch env.Action {
	case entity.ActionMonitorPause:
		m.paused = !m.paused
		if !m.paused && len(m.buffered) > 0 {
			for _, entry := range m.buffered {
				m = m.pushEntry(entry)
			}
			m.buffered = nil
		}

	case entity.ActionHelpToggle:
		m.showHelp = !m.showHelp

	case entity.ActionOverlayDismiss:
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.filter.Focused():
			m.filter.Blur()
		default:
			m.filter.SetValue("")
			m.feed.SetRows(m.visibleRows())
			m.status = ""
			m.statusErr = false
		}

	case entity.ActionViewRefresh:
		m.entries = nil
		m.buffered = nil
		m.feed.SetRows(nil)
		m.status = m.tr("monitor.cleared")
		m.statusErr = false

	case entity.ActionLanguageCycle:
		// The language push that follows carries the announcement.

	case entity.ActionPaletteToggle:
		m.status = m.tr("monitor.palette")
		m.statusErr = false

	case entity.ActionViewDispatches, entity.ActionViewTasks, entity.ActionViewWorkers:
		m.view = strings.TrimPrefix(env.Action, "view.")
	}
	return m
}

// pushEntry prepends one action to the feed, newest first.
func (m MonitorModel) pushEntry(entry feedEntry) MonitorModel {
	m.entries = append([]feedEntry{entry}, m.entries...)
	if len(m.entries) > feedLimit {
		m.entries = m.entries[:feedLimit]
	}
	m.feed.SetRows(m.visibleRows())
	return m
}

// handleKey routes one terminal key press. A few keys act locally; the rest
// become console key events for the gateway.
func (m MonitorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		_ = m.client.Close()
		return m, tea.Quit
	}

	if m.err != nil || !m.connected {
		if msg.String() == "q" {
			_ = m.client.Close()
			return m, tea.Quit
		}
		return m, nil
	}

	if m.filter.Focused() {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.client.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd
	}

	press, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	if _, err := m.client.SendKey(press); err != nil {
		m.err = err
	}
	return m, nil
}

// handleFilterKey feeds keys to the filter input. Typed runes still go to the
// gateway flagged as text entry, which suppresses their shortcuts; escape
// rides the same flag and comes back as overlay.dismiss to close the field.
func (m MonitorModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if _, err := m.client.SendKey(KeyPress{Key: "escape", TextEntry: true}); err != nil {
			m.err = err
		}
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		m.feed.SetRows(m.visibleRows())
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.feed.SetRows(m.visibleRows())

	if msg.Type == tea.KeyRunes {
		if press, ok := translateKey(msg); ok {
			press.TextEntry = true
			if _, err := m.client.SendKey(press); err != nil {
				m.err = err
			}
		}
	}
	return m, cmd
}

// visibleRows renders the feed entries that pass the filter.
func (m MonitorModel) visibleRows() []table.Row {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.action), needle) &&
			!strings.Contains(strings.ToLower(e.chord), needle) {
			continue
		}
		rows = append(rows, table.Row{
			e.when.Local().Format("15:04:05"),
			e.action,
			e.chord,
			e.session,
			e.source,
		})
	}
	return rows
}

// View renders the monitor.
func (m MonitorModel) View() string {
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			m.theme.ErrorStyle.Render("✗ "+m.err.Error()),
			m.theme.Subtle.Render(m.tr("monitor.quit")),
		)
	}
	if !m.connected {
		return "\n" + lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(),
			" ",
			m.theme.Subtle.Render(m.tr("monitor.connecting", m.cfg.URL)),
		)
	}

	sections := []string{m.renderHeader()}
	if m.showHelp {
		sections = append(sections, m.renderKeymap())
	} else {
		sections = append(sections, m.feed.View())
	}
	if m.filter.Focused() {
		sections = append(sections, m.filter.View())
	} else if v := strings.TrimSpace(m.filter.Value()); v != "" {
		sections = append(sections, m.theme.Subtle.Render(m.tr("monitor.filter")+": "+v))
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader shows the title with the session badges.
func (m MonitorModel) renderHeader() string {
	state := m.theme.Badge.Render(m.tr("monitor.live"))
	if m.paused {
		state = m.theme.BadgeWarning.Render(m.tr("monitor.paused"))
	}

	parts := []string{
		m.theme.Title.Render(m.tr("monitor.title")),
		" ",
		state,
		" ",
		m.theme.BadgeMuted.Render(shortSession(m.session)),
		" ",
		m.theme.BadgeMuted.Render(m.lang),
	}
	if m.view != "" {
		parts = append(parts, " ", m.theme.BadgeMuted.Render(m.view))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderKeymap shows the gateway keymap with localized descriptions.
func (m MonitorModel) renderKeymap() string {
	rows := make([]string, 0, len(m.keymap.Entries)+1)
	rows = append(rows, m.theme.BoxHeader.Render(m.tr("monitor.keymap")))
	for _, entry := range m.keymap.Entries {
		chord := entry.Chord
		if chord == "" {
			chord = "-"
		}
		row := m.theme.HelpKey.Render(fmt.Sprintf("%-12s", chord)) +
			m.theme.HelpDesc.Render(m.tr(entry.Description))
		if entry.IsCustom {
			row += m.theme.Highlight.Render(" *")
		}
		rows = append(rows, row)
	}
	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderStatus shows the last gateway message.
func (m MonitorModel) renderStatus() string {
	if m.status == "" {
		return m.theme.Subtle.Render(m.tr("monitor.waiting"))
	}
	if m.statusErr {
		return m.theme.ErrorStyle.Render(m.status)
	}
	return m.theme.Subtle.Render(m.status)
}

// tr resolves a message key in the session language.
func (m MonitorModel) tr(key string, args ...any) string {
	return m.locales.TIn(m.lang, key, args...)
}

// shortSession trims a session UUID to its first segment.
func shortSession(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
