package console

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/input"
)

// Feed is a push-driven input.Source. The owning connection calls Deliver
// for each decoded key event; the subscribed dispatcher handles it inline.
type Feed struct {
	mu      sync.Mutex
	handler func(input.KeyEvent) bool
	gen     uint64
}

// Subscribe registers handler. A feed carries at most one subscriber at a
// time; the returned cancel releases the slot for a successor.
func (f *Feed) Subscribe(handler func(input.KeyEvent) bool) (func(), error) {
	if handler == nil {
		return nil, errors.New("console: nil feed handler")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handler != nil {
		return nil, errors.New("console: feed already has a subscriber")
	}
	f.handler = handler
	f.gen++
	gen := f.gen

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen {
			f.handler = nil
		}
	}
	return cancel, nil
}

// Deliver feeds one event to the current subscriber and reports whether it
// was consumed. Without a subscriber the event is dropped.
func (f *Feed) Deliver(ev input.KeyEvent) bool {
	f.mu.Lock()
	handler := f.handler
	f.mu.Unlock()
	if handler == nil {
		return false
	}
	return handler(ev)
}

// Session is one operator console: a dispatcher fed by a single connection,
// bound to the current keymap, carrying identity and locale.
type Session struct {
	ID        string
	Source    string
	CreatedAt time.Time

	binder     *Binder
	feed       *Feed
	dispatcher *input.Dispatcher
	fire       OnAction

	mu        sync.Mutex
	locale    string
	lastFired string
}

// NewSession creates an enabled session. Source labels the connection kind
// and ends up on recorded action events; fire receives every action the
// session's bindings trigger.
func NewSession(ctx context.Context, source, locale string, binder *Binder, fire OnAction) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		binder:    binder,
		feed:      &Feed{},
		fire:      fire,
		locale:    locale,
	}

	d := input.NewDispatcher(ctx, s.feed)
	if err := d.SetEnabled(true); err != nil {
		return nil, fmt.Errorf("failed to enable dispatcher: %w", err)
	}
	s.dispatcher = d
	return s, nil
}

// Rebind replaces the session's bindings with ones built from keymap. Stale
// bindings from earlier keymaps can no longer fire.
func (s *Session) Rebind(ctx context.Context, keymap entity.Keymap) error {
	defs := s.binder.Bind(ctx, keymap, s.noteFired)
	if err := s.dispatcher.Register(defs); err != nil {
		return fmt.Errorf("failed to register definitions: %w", err)
	}
	return nil
}

// Deliver dispatches one key event and reports whether it was consumed,
// along with the action that fired. The caller serializes Deliver calls; a
// connection's read loop does this naturally.
func (s *Session) Deliver(ev input.KeyEvent) (consumed bool, action string) {
	s.mu.Lock()
	s.lastFired = ""
	s.mu.Unlock()

	consumed = s.feed.Deliver(ev)

	s.mu.Lock()
	action = s.lastFired
	s.mu.Unlock()
	return consumed, action
}

// Definitions returns the session's current bindings in registration order.
func (s *Session) Definitions() []input.Definition {
	return s.dispatcher.Definitions()
}

// Suppressed reports whether ev went unconsumed only because it targeted a
// text-entry surface: some binding would have matched the same event outside
// one.
func (s *Session) Suppressed(ev input.KeyEvent) bool {
	if !ev.TextEntry {
		return false
	}
	probe := ev
	probe.TextEntry = false
	for _, def := range s.dispatcher.Definitions() {
		if def.Matches(probe) {
			return true
		}
	}
	return false
}

// Locale returns the session's display language.
func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// SetLocale updates the session's display language.
func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// Close shuts the session's dispatcher down. Safe to call more than once.
func (s *Session) Close() {
	s.dispatcher.Close()
}

func (s *Session) noteFired(action, chord string) {
	s.mu.Lock()
	s.lastFired = action
	s.mu.Unlock()
	if s.fire != nil {
		s.fire(action, chord)
	}
}
