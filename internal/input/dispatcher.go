package input

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

// ErrClosed is returned by operations on a dispatcher after Close.
var ErrClosed = errors.New("input: dispatcher closed")

// Source delivers key events to a subscribed handler. Subscribe registers
// the handler and returns a cancel function that stops further deliveries.
// Cancel must not wait for an in-flight delivery to finish; the dispatcher
// drops late deliveries on its own.
type Source interface {
	Subscribe(handler func(KeyEvent) bool) (cancel func(), err error)
}

// DispatchHook observes every delivered event after matching. Consumed is
// true when a definition matched and its action ran.
type DispatchHook func(ev KeyEvent, consumed bool)

// Dispatcher matches key events from a Source against registered definitions
// and runs the first matching action.
//
// Matching is first-match-wins in registration order. While enabled, the
// dispatcher holds exactly one subscription on its source; registering new
// definitions replaces that subscription rather than stacking a second one,
// and a handler from a replaced subscription is never invoked again. The
// source serializes deliveries, so actions never run concurrently.
type Dispatcher struct {
	ctx    context.Context
	source Source

	mu      sync.Mutex
	defs    []Definition
	enabled bool
	closed  bool
	cancel  func()
	subID   uint64
	hook    DispatchHook
}

// NewDispatcher creates a dispatcher reading from source. The dispatcher
// starts disabled with no definitions.
func NewDispatcher(ctx context.Context, source Source) *Dispatcher {
	return &Dispatcher{
		ctx:    ctx,
		source: source,
	}
}

// SetDispatchHook sets the observer invoked after each delivered event.
// Pass nil to remove it.
func (d *Dispatcher) SetDispatchHook(hook DispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hook = hook
}

// Register replaces the dispatcher's definitions with defs. If the
// dispatcher is enabled the active subscription is torn down and a fresh one
// is created over the new definitions, so events observed afterwards only
// ever see the new set. A failed resubscribe leaves the dispatcher disabled.
func (d *Dispatcher) Register(defs []Definition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	d.defs = make([]Definition, len(defs))
	copy(d.defs, defs)

	log := logging.FromContext(d.ctx)
	log.Debug().Int("definitions", len(d.defs)).Msg("shortcut definitions registered")

	if !d.enabled {
		return nil
	}

	d.unsubscribeLocked()
	if err := d.subscribeLocked(); err != nil {
		d.enabled = false
		return fmt.Errorf("resubscribe after register: %w", err)
	}
	return nil
}

// SetEnabled subscribes to the source when turning on and unsubscribes when
// turning off. Calls that do not change the state are no-ops.
func (d *Dispatcher) SetEnabled(enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if enabled == d.enabled {
		return nil
	}

	if !enabled {
		d.unsubscribeLocked()
		d.enabled = false
		return nil
	}

	if err := d.subscribeLocked(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	d.enabled = true
	return nil
}

// Enabled reports whether the dispatcher currently holds a subscription.
func (d *Dispatcher) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// Definitions returns a copy of the registered definitions in registration
// order.
func (d *Dispatcher) Definitions() []Definition {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Definition, len(d.defs))
	copy(out, d.defs)
	return out
}

// Close tears down the subscription and rejects further operations. It is
// safe to call more than once; only the first call releases the
// subscription.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.unsubscribeLocked()
	d.enabled = false
	d.closed = true
	return nil
}

// subscribeLocked opens a subscription over a snapshot of the current
// definitions. The handler closure carries the snapshot and a token; the
// token lets dispatch drop deliveries from subscriptions that have since
// been replaced. Caller must hold d.mu.
func (d *Dispatcher) subscribeLocked() error {
	d.subID++
	token := d.subID

	snapshot := make([]Definition, len(d.defs))
	copy(snapshot, d.defs)

	cancel, err := d.source.Subscribe(func(ev KeyEvent) bool {
		return d.dispatch(token, snapshot, ev)
	})
	if err != nil {
		return err
	}
	d.cancel = cancel
	return nil
}

// unsubscribeLocked cancels the active subscription, if any. Caller must
// hold d.mu.
func (d *Dispatcher) unsubscribeLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	// Invalidate the token so a delivery racing with the cancel is dropped.
	d.subID++
}

// dispatch runs the first definition in defs that matches ev and reports
// whether the event was consumed. Deliveries from a replaced or closed
// subscription are dropped without touching the hook.
func (d *Dispatcher) dispatch(token uint64, defs []Definition, ev KeyEvent) bool {
	d.mu.Lock()
	if d.closed || token != d.subID {
		d.mu.Unlock()
		return false
	}
	hook := d.hook
	d.mu.Unlock()

	for _, def := range defs {
		if !def.Matches(ev) {
			continue
		}
		log := logging.FromContext(d.ctx)
		log.Debug().
			Str("key", ev.Key).
			Str("description", def.Description).
			Msg("shortcut dispatched")
		def.Action()
		if hook != nil {
			hook(ev, true)
		}
		return true
	}

	if hook != nil {
		hook(ev, false)
	}
	return false
}
