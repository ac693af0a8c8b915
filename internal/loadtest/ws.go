package loadtest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	wireProtocolVersion = 1
	closeGrace          = time.Second
)

const (
	msgTypeHello    = "hello"
	msgTypeKey      = "key"
	msgTypeDispatch = "dispatch"
	msgTypeError    = "error"
)

// wsCommand is the client half of the console protocol, trimmed to what a
// load worker sends.
type wsCommand struct {
	Type      string `json:"type"`
	Protocol  int    `json:"protocol,omitempty"`
	Client    string `json:"client,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Seq       uint64 `json:"seq,omitempty"`
	Key       string `json:"key,omitempty"`
	Ctrl      bool   `json:"ctrl,omitempty"`
	Shift     bool   `json:"shift,omitempty"`
	Alt       bool   `json:"alt,omitempty"`
	TextEntry bool   `json:"textEntry,omitempty"`
}

// wsReply decodes just enough of any server message to route it.
type wsReply struct {
	Type     string `json:"type"`
	Seq      uint64 `json:"seq"`
	Consumed bool   `json:"consumed"`
	Action   string `json:"action"`
	Error    string `json:"error"`
}

// defaultKeyEvents walks the stock keymap: view chords, the palette, a
// shifted chord, escape, an unbound rune, a rune typed into a text field
// so suppression fires, and a refresh. language.cycle is left out; it
// rewrites the gateway's config file on every hit.
var defaultKeyEvents = []KeySpec{
	{Key: "d"},
	{Key: "t"},
	{Key: "k", Ctrl: true},
	{Key: "?", Shift: true},
	{Key: "escape"},
	{Key: "z"},
	{Key: "w", TextEntry: true},
	{Key: "r"},
}

func defaultKeyEvent(i int) KeySpec {
	return defaultKeyEvents[i%len(defaultKeyEvents)]
}

// WSRunner opens one console session per worker and measures the round
// trip from key message to dispatch reply.
type WSRunner struct {
	cfg      Config
	stats    *Stats
	scenario *Scenario
}

// NewWSRunner builds a runner for the given config. scenario may be nil.
func NewWSRunner(cfg Config, scenario *Scenario) *WSRunner {
	return &WSRunner{
		cfg:      cfg,
		stats:    NewStats(),
		scenario: scenario,
	}
}

// Run executes the load test and blocks until the request budget is spent,
// the duration elapses, or ctx is cancelled. An unreachable gateway fails
// the run; a connection lost mid-run is counted and the other workers
// carry on.
func (r *WSRunner) Run(ctx context.Context) (Summary, error) {
	if r.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Workers; i++ {
		worker := i
		g.Go(func() error {
			return r.worker(ctx, worker)
		})
	}

	err := g.Wait()
	return r.stats.Summary(), err
}

func (r *WSRunner) worker(ctx context.Context, id int) error {
	if delay := r.cfg.rampDelay(id); delay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}

	script, err := r.scenario.NewWorkerScript()
	if err != nil {
		return err
	}

	conn, err := r.dial(ctx, id)
	if err != nil {
		return fmt.Errorf("worker %d: %w", id, err)
	}
	defer closeQuietly(conn)

	if err := r.handshake(conn, id); err != nil {
		return fmt.Errorf("worker %d: %w", id, err)
	}

	var seq uint64
	quota := r.cfg.workerQuota(id)
	for i := 0; quota == 0 || i < quota; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		spec, ok, err := script.KeyEvent(i)
		if err != nil {
			return err
		}
		if !ok {
			spec = defaultKeyEvent(i)
		}

		seq++
		if !r.roundTrip(ctx, conn, seq, spec) {
			return nil
		}

		if r.cfg.ThinkTime > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(r.cfg.ThinkTime):
			}
		}
	}
	return nil
}

func (r *WSRunner) dial(ctx context.Context, id int) (*websocket.Conn, error) {
	header := http.Header{}
	if r.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+r.cfg.Token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, r.cfg.Target, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, errors.New("gateway requires a valid token")
		}
		return nil, fmt.Errorf("dial %s: %w", r.cfg.Target, err)
	}
	return conn, nil
}

func (r *WSRunner) handshake(conn *websocket.Conn, id int) error {
	hello := wsCommand{
		Type:     msgTypeHello,
		Protocol: wireProtocolVersion,
		Client:   fmt.Sprintf("loadgen-%d", id),
		Locale:   r.cfg.Locale,
	}
	if err := conn.WriteJSON(hello); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(r.cfg.RequestTimeout()))
	var reply wsReply
	if err := conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("read hello reply: %w", err)
	}
	if reply.Type == msgTypeError {
		return fmt.Errorf("gateway rejected session: %s", reply.Error)
	}
	return nil
}

// roundTrip sends one key message and reads until its dispatch reply.
// Action, keymap, and language pushes interleave with replies and are
// skipped. Returns false once the connection is unusable.
func (r *WSRunner) roundTrip(ctx context.Context, conn *websocket.Conn, seq uint64, spec KeySpec) bool {
	cmd := wsCommand{
		Type:      msgTypeKey,
		Seq:       seq,
		Key:       spec.Key,
		Ctrl:      spec.Ctrl,
		Shift:     spec.Shift,
		Alt:       spec.Alt,
		TextEntry: spec.TextEntry,
	}

	start := time.Now()
	if err := conn.WriteJSON(cmd); err != nil {
		r.stats.RecordError()
		return false
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(r.cfg.RequestTimeout()))
		var reply wsReply
		if err := conn.ReadJSON(&reply); err != nil {
			if ctx.Err() == nil {
				r.stats.RecordError()
			}
			return false
		}

		switch reply.Type {
		case msgTypeDispatch:
			if reply.Seq == seq {
				r.stats.Record(time.Since(start))
				return true
			}
		case msgTypeError:
			r.stats.RecordError()
			return true
		}
	}
}

// closeQuietly runs the close handshake so the gateway logs a clean
// disconnect instead of an abnormal closure.
func closeQuietly(conn *websocket.Conn) {
	deadline := time.Now().Add(closeGrace)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)

	_ = conn.SetReadDeadline(deadline)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	_ = conn.Close()
}
