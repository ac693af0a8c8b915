package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/quarterdeckhq/quarterdeck/internal/console"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/input"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
	"github.com/quarterdeckhq/quarterdeck/internal/telemetry"
)

// ServeWS upgrades the request and runs the console session until the
// client disconnects. Key events are dispatched synchronously in the read
// loop, so a session's actions never run concurrently.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request.
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	hello, err := readHello(conn)
	if err != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		_ = conn.WriteJSON(errorReply{Type: msgError, Error: err.Error()})
		_ = conn.Close()
		return
	}

	locale := h.resolveLocale(hello, r)

	c := &client{
		hub:    h,
		conn:   conn,
		topics: make(map[string]bool),
		done:   make(chan struct{}),
	}

	session, err := console.NewSession(ctx, "ws", locale, h.Binder, func(action, chord string) {
		h.actionFired(ctx, c, action, chord)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create console session")
		_ = conn.Close()
		return
	}
	c.session = session
	c.clientID = hello.Client
	if c.clientID == "" {
		c.clientID = session.ID
	}

	ctx = logging.WithSessionID(ctx, session.ID)
	log = logging.FromContext(ctx)

	doc, err := h.Keymaps.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load keymap")
		session.Close()
		_ = conn.Close()
		return
	}
	if err := session.Rebind(ctx, doc.Keymap()); err != nil {
		log.Error().Err(err).Msg("failed to bind keymap")
		session.Close()
		_ = conn.Close()
		return
	}

	if err := h.register(c); err != nil {
		session.Close()
		_ = conn.Close()
		return
	}
	h.Metrics.SessionOpened(ctx)

	defer func() {
		h.unregister(c)
		c.close(websocket.CloseNormalClosure, "")
		session.Close()
		h.Metrics.SessionClosed(ctx)
		log.Info().Msg("console session closed")
	}()

	var view string
	if h.Prefs != nil {
		if last, ok := h.Prefs.LastView(c.clientID); ok {
			view = last
		}
	}

	c.send(ctx, helloReply{
		Type:     msgHello,
		Protocol: protocolVersion,
		Session:  session.ID,
		Language: locale,
		Message:  h.Locales.TIn(locale, "server.welcome", session.ID),
		View:     view,
		Keymap:   doc,
	})

	log.Info().
		Str("locale", locale).
		Str("remote", conn.RemoteAddr().String()).
		Msg("console session opened")

	go c.pingLoop()

	h.readLoop(ctx, c)
}

// readHello reads the first client frame, which must be a hello naming a
// protocol the server speaks.
func readHello(conn *websocket.Conn) (clientMessage, error) {
	var msg clientMessage
	if err := conn.ReadJSON(&msg); err != nil {
		return msg, fmt.Errorf("read hello: %w", err)
	}
	if msg.Type != msgHello {
		return msg, fmt.Errorf("expected hello, got %q", msg.Type)
	}
	if msg.Protocol > protocolVersion {
		return msg, fmt.Errorf("unsupported protocol %d (server speaks %d)", msg.Protocol, protocolVersion)
	}
	return msg, nil
}

// resolveLocale picks the session language from the hello, falling back to
// the Accept-Language header and finally to the active language.
func (h *Hub) resolveLocale(hello clientMessage, r *http.Request) string {
	if hello.Locale != "" {
		return h.Locales.MatchAccept(hello.Locale)
	}
	return h.Locales.MatchAccept(r.Header.Get("Accept-Language"))
}

func (h *Hub) readLoop(ctx context.Context, c *client) {
	log := logging.FromContext(ctx)

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("websocket read ended")
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.send(ctx, errorReply{Type: msgError, Error: "invalid json message"})
			continue
		}

		switch msg.Type {
		case msgKey:
			h.handleKey(ctx, c, msg)
		case msgSubscribe:
			c.send(ctx, subscribedReply{Type: msgSubscribed, Topics: c.setTopics(msg.Topics, true)})
		case msgUnsubscribe:
			c.send(ctx, subscribedReply{Type: msgSubscribed, Topics: c.setTopics(msg.Topics, false)})
		case msgHello:
			c.send(ctx, errorReply{Type: msgError, Error: "hello already received"})
		default:
			c.send(ctx, errorReply{Type: msgError, Error: fmt.Sprintf("unknown message type %q", msg.Type)})
		}
	}
}

// handleKey folds the client's modifier flags into a KeyEvent, dispatches
// it, and answers with the outcome so the front end can suppress the
// default handling for consumed events.
func (h *Hub) handleKey(ctx context.Context, c *client, msg clientMessage) {
	ctx, span := telemetry.Tracer().Start(ctx, "console.dispatch")
	defer span.End()

	ev := input.KeyEvent{
		Key:       msg.Key,
		Ctrl:      msg.Ctrl || msg.Meta,
		Shift:     msg.Shift,
		Alt:       msg.Alt,
		TextEntry: msg.TextEntry,
	}

	start := time.Now()
	consumed, action := c.session.Deliver(ev)
	elapsed := time.Since(start)

	outcome := telemetry.OutcomeUnmatched
	switch {
	case consumed:
		outcome = telemetry.OutcomeMatched
	case c.session.Suppressed(ev):
		outcome = telemetry.OutcomeSuppressed
	}
	h.Metrics.RecordDispatch(ctx, outcome, elapsed)
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.String("action", action),
	)

	c.send(ctx, dispatchReply{Type: msgDispatch, Seq: msg.Seq, Consumed: consumed, Action: action})
}

// actionFired runs inside dispatch when a binding matches: it records the
// event (which fans out to monitor subscribers), tracks the client's view
// preference, and gives language.cycle its server-side behavior.
func (h *Hub) actionFired(ctx context.Context, c *client, action, chord string) {
	log := logging.FromContext(ctx)

	if h.RecordAction != nil {
		event := entity.NewActionEvent(c.session.ID, action, chord, c.session.Source)
		if err := h.RecordAction(ctx, event); err != nil {
			log.Warn().Err(err).Str("action", action).Msg("failed to record action")
		}
	}

	switch action {
	case entity.ActionViewDispatches, entity.ActionViewTasks, entity.ActionViewWorkers:
		if h.Prefs != nil {
			view := strings.TrimPrefix(action, "view.")
			if err := h.Prefs.SetLastView(c.clientID, view); err != nil {
				log.Warn().Err(err).Str("view", view).Msg("failed to persist view preference")
			}
		}
	case entity.ActionLanguageCycle:
		h.cycleLanguage(ctx, c)
	}
}

// cycleLanguage rotates the persisted console language and tells the
// session that triggered it.
func (h *Hub) cycleLanguage(ctx context.Context, c *client) {
	tag, err := h.Locales.Cycle(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to cycle language")
		return
	}
	c.session.SetLocale(tag)
	c.send(ctx, languagePush{
		Type:     msgLanguage,
		Language: tag,
		Message:  h.Locales.TIn(tag, "server.language.changed", tag),
	})
}
