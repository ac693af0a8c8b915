package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// PrefStore persists per-client session preferences. It backs the RAM-first
// preference cache, so every method is a single cheap statement.
type PrefStore struct {
	db *sql.DB
}

// NewPrefStore creates a new preference store over db.
func NewPrefStore(db *sql.DB) *PrefStore {
	return &PrefStore{db: db}
}

// ListSessionPrefs loads every stored preference record.
func (s *PrefStore) ListSessionPrefs(ctx context.Context) ([]*entity.SessionPref, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT client_id, last_view, updated_at FROM session_prefs`,
	)
	if err != nil {
		return nil, fmt.Errorf("query session prefs: %w", err)
	}
	defer closeRows(ctx, rows)

	var prefs []*entity.SessionPref
	for rows.Next() {
		var pref entity.SessionPref
		if err := rows.Scan(&pref.ClientID, &pref.LastView, &pref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan session pref: %w", err)
		}
		prefs = append(prefs, &pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session prefs: %w", err)
	}

	return prefs, nil
}

// UpsertSessionPref inserts or updates the record for a client.
func (s *PrefStore) UpsertSessionPref(ctx context.Context, pref *entity.SessionPref) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_prefs (client_id, last_view, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET
		     last_view = excluded.last_view,
		     updated_at = excluded.updated_at`,
		pref.ClientID, pref.LastView, pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert session pref: %w", err)
	}
	return nil
}

// DeleteSessionPref removes the record for a client.
func (s *PrefStore) DeleteSessionPref(ctx context.Context, clientID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_prefs WHERE client_id = ?`, clientID,
	)
	if err != nil {
		return fmt.Errorf("delete session pref: %w", err)
	}
	return nil
}
