package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ncruces/go-sqlite3"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/repository"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

const defaultRecentLimit = 50

type actionEventRepo struct {
	db *sql.DB
}

// NewActionEventRepository creates a new SQLite-backed action event repository.
func NewActionEventRepository(db *sql.DB) repository.ActionEventRepository {
	return &actionEventRepo{db: db}
}

func (r *actionEventRepo) Record(ctx context.Context, event *entity.ActionEvent) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("action", event.Action).
		Str("session_id", event.SessionID).
		Msg("recording action event")

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO action_events (session_id, action, chord, source, occurred_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.SessionID, event.Action, event.Chord, event.Source, event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert action event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read action event id: %w", err)
	}
	event.ID = id

	return nil
}

func (r *actionEventRepo) Recent(ctx context.Context, limit, offset int) ([]*entity.ActionEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, action, chord, source, occurred_at
		 FROM action_events
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent action events: %w", err)
	}
	defer closeRows(ctx, rows)

	var events []*entity.ActionEvent
	for rows.Next() {
		var ev entity.ActionEvent
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Action, &ev.Chord, &ev.Source, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan action event: %w", err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action events: %w", err)
	}

	return events, nil
}

func (r *actionEventRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM action_events WHERE occurred_at >= ?`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count action events: %w", err)
	}
	return count, nil
}

func (r *actionEventRepo) Stats(ctx context.Context) (*entity.ActionStats, error) {
	var stats entity.ActionStats
	var first, last sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT action), COUNT(DISTINCT session_id),
		        MIN(occurred_at), MAX(occurred_at)
		 FROM action_events`,
	).Scan(&stats.TotalEvents, &stats.UniqueActions, &stats.UniqueSessions, &first, &last)
	if err != nil {
		return nil, fmt.Errorf("query action stats: %w", err)
	}

	if stats.FirstEvent, err = exprTime(first); err != nil {
		return nil, fmt.Errorf("decode first event time: %w", err)
	}
	if stats.LastEvent, err = exprTime(last); err != nil {
		return nil, fmt.Errorf("decode last event time: %w", err)
	}

	return &stats, nil
}

func (r *actionEventRepo) TopActions(ctx context.Context, limit int) ([]*entity.ActionCount, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT action, COUNT(*) AS uses, MAX(occurred_at) AS last_used
		 FROM action_events
		 GROUP BY action
		 ORDER BY uses DESC, action ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top actions: %w", err)
	}
	defer closeRows(ctx, rows)

	var counts []*entity.ActionCount
	for rows.Next() {
		var c entity.ActionCount
		var lastUsed sql.NullString
		if err := rows.Scan(&c.Action, &c.Count, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan action count: %w", err)
		}
		t, err := exprTime(lastUsed)
		if err != nil {
			return nil, fmt.Errorf("decode last used time: %w", err)
		}
		c.LastUsed = t
		counts = append(counts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action counts: %w", err)
	}

	return counts, nil
}

func (r *actionEventRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM action_events WHERE occurred_at < ?`, before,
	)
	if err != nil {
		return 0, fmt.Errorf("delete old action events: %w", err)
	}
	return res.RowsAffected()
}

func (r *actionEventRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_events`)
	if err != nil {
		return 0, fmt.Errorf("delete action events: %w", err)
	}
	return res.RowsAffected()
}

// exprTime decodes a timestamp selected through an expression such as
// MAX(occurred_at). The driver maps declared DATETIME columns to time.Time on
// scan but returns expression results as stored text.
func exprTime(v sql.NullString) (time.Time, error) {
	if !v.Valid {
		return time.Time{}, nil
	}
	return sqlite3.TimeFormatAuto.Decode(v.String)
}

// closeRows closes rows and logs on failure; scan errors take precedence.
func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close result rows")
	}
}
