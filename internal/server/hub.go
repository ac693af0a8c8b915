package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/cache"
	"github.com/quarterdeckhq/quarterdeck/internal/console"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/i18n"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
	"github.com/quarterdeckhq/quarterdeck/internal/telemetry"
)

const (
	wsWriteDeadline  = 5 * time.Second
	wsReadDeadline   = 90 * time.Second
	wsPingInterval   = 30 * time.Second
	wsMaxMessageSize = 32 * 1024
)

// Hub owns every live console connection. It implements
// port.ActionBroadcaster, so actions recorded through the history use case
// fan out to monitor subscribers.
type Hub struct {
	Binder  *console.Binder
	Locales *i18n.Provider
	Prefs   *cache.PrefCache
	Metrics *telemetry.Metrics
	Keymaps *usecase.GetKeymapUseCase

	// AllowedOrigins widens the upgrade origin check: empty admits only
	// same-host browsers, "*" admits everything.
	AllowedOrigins []string

	// RecordAction persists and fans out one fired action. Wired after
	// construction because the history use case broadcasts through this
	// hub.
	RecordAction func(ctx context.Context, event *entity.ActionEvent) error

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// client is one console connection: the socket, its session, and its
// subscription topics. writeMu serializes writes; gorilla connections do not
// support concurrent writers.
type client struct {
	hub      *Hub
	conn     *websocket.Conn
	session  *console.Session
	clientID string

	writeMu sync.Mutex

	mu     sync.Mutex
	topics map[string]bool

	done      chan struct{}
	closeOnce sync.Once
}

func (h *Hub) register(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.New("hub is closed")
	}
	if h.clients == nil {
		h.clients = make(map[*client]struct{})
	}
	h.clients[c] = struct{}{}
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func (h *Hub) snapshot() []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

// Sessions reports the number of live console connections.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastAction sends a fired action to every connection subscribed to
// the actions topic.
func (h *Hub) BroadcastAction(ctx context.Context, event *entity.ActionEvent) {
	push := actionPush{Type: msgAction, Event: event}
	for _, c := range h.snapshot() {
		if c.subscribed(topicActions) {
			c.send(ctx, push)
		}
	}
}

// Rebind rebuilds every session's bindings from the current keymap and
// pushes the fresh document. The config watcher calls this after a keymap
// change, so API edits and hand edits to config.toml propagate the same way.
func (h *Hub) Rebind(ctx context.Context) {
	log := logging.FromContext(ctx)

	doc, err := h.Keymaps.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load keymap for rebind")
		return
	}
	keymap := doc.Keymap()
	push := keymapPush{Type: msgKeymap, Keymap: doc}
	log.Debug().Strs("actions", keymap.Actions()).Msg("rebinding sessions")

	clients := h.snapshot()
	for _, c := range clients {
		if err := c.session.Rebind(ctx, keymap); err != nil {
			log.Warn().Err(err).Str("session", c.session.ID).Msg("failed to rebind session")
			continue
		}
		c.send(ctx, push)
	}
	log.Info().Int("sessions", len(clients)).Msg("sessions rebound to updated keymap")
}

// Close drops every connection and rejects further upgrades. Safe to call
// more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = nil
	h.mu.Unlock()

	for _, c := range clients {
		c.close(websocket.CloseGoingAway, "server shutting down")
	}
}

// checkOrigin admits requests without an Origin header (non-browser
// clients) and same-host browsers; config can widen the set.
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

func (c *client) subscribed(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.topics[topic]
}

// setTopics applies a subscribe or unsubscribe and returns the resulting
// topic set, sorted for stable acks.
func (c *client) setTopics(topics []string, on bool) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		if on {
			c.topics[topic] = true
		} else {
			delete(c.topics, topic)
		}
	}
	out := make([]string, 0, len(c.topics))
	for topic := range c.topics {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// send writes one JSON message under the write mutex with a deadline. A
// failed write closes the socket; the read loop notices and cleans up.
func (c *client) send(ctx context.Context, payload any) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
	if err := c.conn.WriteJSON(payload); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("session", c.session.ID).Msg("websocket write failed")
		_ = c.conn.Close()
	}
}

// close sends a best-effort close frame and tears the socket down. Safe to
// call more than once.
func (c *client) close(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
		c.writeMu.Unlock()
		_ = c.conn.Close()
	})
}

// pingLoop keeps the liveness check running until the connection goes away.
// The pong handler on the read side extends the read deadline.
func (c *client) pingLoop() {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}
