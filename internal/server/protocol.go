package server

import (
	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// protocolVersion is the console wire protocol this server speaks. A hello
// asking for a newer protocol is rejected before the session starts.
const protocolVersion = 1

// Console message types.
const (
	msgHello       = "hello"
	msgKey         = "key"
	msgSubscribe   = "subscribe"
	msgUnsubscribe = "unsubscribe"
	msgDispatch    = "dispatch"
	msgKeymap      = "keymap"
	msgAction      = "action"
	msgSubscribed  = "subscribed"
	msgLanguage    = "language"
	msgError       = "error"
)

// topicActions subscribes a connection to fired-action broadcasts.
const topicActions = "actions"

// clientMessage is every message a console client can send. Type selects
// which fields are meaningful.
type clientMessage struct {
	Type string `json:"type"`

	// hello
	Protocol int    `json:"protocol,omitempty"`
	Client   string `json:"client,omitempty"`
	Locale   string `json:"locale,omitempty"`

	// key
	Seq       uint64 `json:"seq,omitempty"`
	Key       string `json:"key,omitempty"`
	Ctrl      bool   `json:"ctrl,omitempty"`
	Meta      bool   `json:"meta,omitempty"`
	Shift     bool   `json:"shift,omitempty"`
	Alt       bool   `json:"alt,omitempty"`
	TextEntry bool   `json:"textEntry,omitempty"`

	// subscribe / unsubscribe
	Topics []string `json:"topics,omitempty"`
}

// helloReply answers a client hello with the session identity and the state
// it needs to render.
type helloReply struct {
	Type     string              `json:"type"`
	Protocol int                 `json:"protocol"`
	Session  string              `json:"session"`
	Language string              `json:"language"`
	Message  string              `json:"message,omitempty"`
	View     string              `json:"view,omitempty"`
	Keymap   port.KeymapDocument `json:"keymap"`
}

// dispatchReply reports the outcome of one key message. Consumed tells the
// front end to suppress the browser default for the event.
type dispatchReply struct {
	Type     string `json:"type"`
	Seq      uint64 `json:"seq"`
	Consumed bool   `json:"consumed"`
	Action   string `json:"action,omitempty"`
}

// keymapPush carries the fresh keymap after a hot reload.
type keymapPush struct {
	Type   string              `json:"type"`
	Keymap port.KeymapDocument `json:"keymap"`
}

// actionPush announces a fired action to monitor subscribers.
type actionPush struct {
	Type  string              `json:"type"`
	Event *entity.ActionEvent `json:"event"`
}

// subscribedReply acknowledges a subscription change with the connection's
// current topic set.
type subscribedReply struct {
	Type   string   `json:"type"`
	Topics []string `json:"topics"`
}

// languagePush announces a language change to the session that caused it.
type languagePush struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Message  string `json:"message,omitempty"`
}

// errorReply reports a client protocol mistake without closing the
// connection.
type errorReply struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
