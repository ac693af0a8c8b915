// Package tui implements the terminal monitor: a bubbletea console that
// attaches to a running gateway over WebSocket, tails fired actions, and
// submits its own key presses for server-side dispatch.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// protocolVersion must match the gateway's console protocol.
const protocolVersion = 1

// closeGrace bounds the close frame write during teardown.
const closeGrace = time.Second

// Envelope is every message the gateway can send to a console. Type selects
// which fields are meaningful.
type Envelope struct {
	Type     string               `json:"type"`
	Protocol int                  `json:"protocol,omitempty"`
	Session  string               `json:"session,omitempty"`
	Language string               `json:"language,omitempty"`
	Message  string               `json:"message,omitempty"`
	View     string               `json:"view,omitempty"`
	Seq      uint64               `json:"seq,omitempty"`
	Consumed bool                 `json:"consumed,omitempty"`
	Action   string               `json:"action,omitempty"`
	Topics   []string             `json:"topics,omitempty"`
	Error    string               `json:"error,omitempty"`
	Keymap   *port.KeymapDocument `json:"keymap,omitempty"`
	Event    *entity.ActionEvent  `json:"event,omitempty"`
}

// Envelope types, mirroring the gateway protocol.
const (
	EnvelopeHello      = "hello"
	EnvelopeDispatch   = "dispatch"
	EnvelopeKeymap     = "keymap"
	EnvelopeAction     = "action"
	EnvelopeSubscribed = "subscribed"
	EnvelopeLanguage   = "language"
	EnvelopeError      = "error"
)

// KeyPress is one key chord to submit to the gateway dispatcher. TextEntry
// marks presses typed into a focused text field so the gateway suppresses
// their shortcuts.
type KeyPress struct {
	Key       string
	Ctrl      bool
	Shift     bool
	Alt       bool
	TextEntry bool
}

// DialOptions configure a console connection.
type DialOptions struct {
	// URL is the gateway WebSocket endpoint, e.g. ws://127.0.0.1:8790/ws.
	URL string
	// Token authenticates against a gateway with an access token set.
	Token string
	// ClientID keys the session's server-side preferences across reconnects.
	ClientID string
	// Locale requests the language for server messages.
	Locale string
	// Topics are subscribed right after the hello.
	Topics []string
}

// Client is a console connection to the gateway. A background goroutine reads
// server messages into the channel returned by Messages. Writes must come
// from a single goroutine, which the bubbletea update loop guarantees.
type Client struct {
	conn     *websocket.Conn
	messages chan Envelope
	seq      uint64
}

// Dial connects, sends the hello, and subscribes to opts.Topics. The hello
// reply arrives as the first envelope on Messages.
func Dial(ctx context.Context, opts DialOptions) (*Client, error) {
	header := http.Header{}
	if opts.Token != "" {
		header.Set("Authorization", "Bearer "+opts.Token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, opts.URL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("dial %s: gateway requires a valid token", opts.URL)
		}
		return nil, fmt.Errorf("dial %s: %w", opts.URL, err)
	}

	hello := clientPayload{
		Type:     "hello",
		Protocol: protocolVersion,
		Client:   opts.ClientID,
		Locale:   opts.Locale,
	}
	if err := conn.WriteJSON(hello); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send hello: %w", err)
	}

	c := &Client{conn: conn, messages: make(chan Envelope, 32)}
	if len(opts.Topics) > 0 {
		if err := c.Subscribe(opts.Topics...); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	go c.readPump()
	return c, nil
}

// clientPayload is the outbound half of the console protocol.
type clientPayload struct {
	Type      string   `json:"type"`
	Protocol  int      `json:"protocol,omitempty"`
	Client    string   `json:"client,omitempty"`
	Locale    string   `json:"locale,omitempty"`
	Seq       uint64   `json:"seq,omitempty"`
	Key       string   `json:"key,omitempty"`
	Ctrl      bool     `json:"ctrl,omitempty"`
	Shift     bool     `json:"shift,omitempty"`
	Alt       bool     `json:"alt,omitempty"`
	TextEntry bool     `json:"textEntry,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// readPump delivers server messages until the connection dies, then closes
// the channel.
func (c *Client) readPump() {
	defer close(c.messages)
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		c.messages <- env
	}
}

// Messages returns the channel of server envelopes. It closes when the
// connection drops.
func (c *Client) Messages() <-chan Envelope {
	return c.messages
}

// SendKey submits one key chord and returns its sequence number. The verdict
// arrives as a dispatch envelope carrying the same number.
func (c *Client) SendKey(p KeyPress) (uint64, error) {
	if c == nil || c.conn == nil {
		return 0, errors.New("not connected")
	}
	c.seq++
	msg := clientPayload{
		Type:      "key",
		Seq:       c.seq,
		Key:       p.Key,
		Ctrl:      p.Ctrl,
		Shift:     p.Shift,
		Alt:       p.Alt,
		TextEntry: p.TextEntry,
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return 0, fmt.Errorf("send key: %w", err)
	}
	return c.seq, nil
}

// Subscribe adds broadcast topics to the connection.
func (c *Client) Subscribe(topics ...string) error {
	if err := c.conn.WriteJSON(clientPayload{Type: "subscribe", Topics: topics}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// Unsubscribe removes broadcast topics from the connection.
func (c *Client) Unsubscribe(topics ...string) error {
	if err := c.conn.WriteJSON(clientPayload{Type: "unsubscribe", Topics: topics}); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

// Close sends a close frame and tears down the connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	deadline := time.Now().Add(closeGrace)
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return c.conn.Close()
}
