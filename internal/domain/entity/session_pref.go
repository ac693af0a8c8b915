package entity

import "time"

// SessionPref holds per-client console preferences remembered between
// connections, keyed by the client identifier presented at session start.
type SessionPref struct {
	ClientID  string    `json:"client_id"`
	LastView  string    `json:"last_view"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSessionPref creates a preference record stamped with the current time.
func NewSessionPref(clientID, lastView string) *SessionPref {
	return &SessionPref{
		ClientID:  clientID,
		LastView:  lastView,
		UpdatedAt: time.Now(),
	}
}

// Touch updates the record for a new view selection.
func (p *SessionPref) Touch(view string) {
	p.LastView = view
	p.UpdatedAt = time.Now()
}
