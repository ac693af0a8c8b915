package entity

import "time"

// ActionEvent represents a console action dispatched by a keyboard shortcut.
type ActionEvent struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	Action     string    `json:"action"`
	Chord      string    `json:"chord"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewActionEvent creates an action event stamped with the current time.
func NewActionEvent(sessionID, action, chord, source string) *ActionEvent {
	return &ActionEvent{
		SessionID:  sessionID,
		Action:     action,
		Chord:      chord,
		Source:     source,
		OccurredAt: time.Now(),
	}
}

// ActionStats contains aggregated action-history statistics.
type ActionStats struct {
	TotalEvents    int64     `json:"total_events"`
	UniqueActions  int64     `json:"unique_actions"`
	UniqueSessions int64     `json:"unique_sessions"`
	FirstEvent     time.Time `json:"first_event"`
	LastEvent      time.Time `json:"last_event"`
}

// ActionCount contains per-action invocation statistics.
type ActionCount struct {
	Action   string    `json:"action"`
	Count    int64     `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// ActionAnalytics aggregates action-history statistics for presentation
// surfaces (stats endpoint, CLI).
type ActionAnalytics struct {
	TotalEvents    int64          `json:"total_events"`
	UniqueActions  int64          `json:"unique_actions"`
	UniqueSessions int64          `json:"unique_sessions"`
	FirstEvent     time.Time      `json:"first_event"`
	LastEvent      time.Time      `json:"last_event"`
	Last24h        int64          `json:"last_24h"`
	TopActions     []*ActionCount `json:"top_actions"`
}
