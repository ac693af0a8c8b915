package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/repository"
	"github.com/quarterdeckhq/quarterdeck/internal/infrastructure/persistence/sqlite"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) (context.Context, repository.ActionEventRepository) {
	t.Helper()
	ctx := sqliteTestCtx()
	dbPath := filepath.Join(t.TempDir(), "quarterdeck.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, sqlite.NewActionEventRepository(db)
}

func eventAt(session, action string, at time.Time) *entity.ActionEvent {
	return &entity.ActionEvent{
		SessionID:  session,
		Action:     action,
		Chord:      "d",
		Source:     "ws",
		OccurredAt: at,
	}
}

func TestActionEventRepository_RecordAssignsID(t *testing.T) {
	ctx, repo := newTestRepo(t)

	ev := entity.NewActionEvent("session-a", "view.dispatches", "d", "ws")
	require.NoError(t, repo.Record(ctx, ev))

	assert.Positive(t, ev.ID)
}

func TestActionEventRepository_RecentNewestFirst(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.dispatches", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base.Add(-time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-b", "palette.toggle", base)))

	events, err := repo.Recent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "palette.toggle", events[0].Action)
	assert.Equal(t, "view.tasks", events[1].Action)
	assert.Equal(t, "view.dispatches", events[2].Action)
}

func TestActionEventRepository_RecentPagination(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.refresh", base.Add(time.Duration(i)*time.Minute))))
	}

	page1, err := repo.Recent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := repo.Recent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	assert.NotEqual(t, page1[0].ID, page2[0].ID)
}

func TestActionEventRepository_RecentEmpty(t *testing.T) {
	ctx, repo := newTestRepo(t)

	events, err := repo.Recent(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestActionEventRepository_CountSince(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base.Add(-48*time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base.Add(-time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base)))

	count, err := repo.CountSince(ctx, base.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestActionEventRepository_Stats(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.dispatches", base.Add(-time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base)))
	require.NoError(t, repo.Record(ctx, eventAt("session-b", "view.tasks", base)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalEvents)
	assert.Equal(t, int64(2), stats.UniqueActions)
	assert.Equal(t, int64(2), stats.UniqueSessions)
	assert.False(t, stats.FirstEvent.IsZero())
	assert.False(t, stats.LastEvent.IsZero())
	assert.True(t, stats.LastEvent.After(stats.FirstEvent) || stats.LastEvent.Equal(stats.FirstEvent))
}

func TestActionEventRepository_StatsEmpty(t *testing.T) {
	ctx, repo := newTestRepo(t)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEvents)
	assert.True(t, stats.FirstEvent.IsZero())
	assert.True(t, stats.LastEvent.IsZero())
}

func TestActionEventRepository_TopActions(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.dispatches", base)))
	}
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "help.toggle", base)))

	top, err := repo.TopActions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "view.dispatches", top[0].Action)
	assert.Equal(t, int64(3), top[0].Count)
	assert.True(t, top[0].LastUsed.Equal(base))
	assert.Equal(t, "help.toggle", top[1].Action)
	assert.Equal(t, int64(1), top[1].Count)
}

func TestActionEventRepository_DeleteOlderThan(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base.Add(-72*time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base.Add(-48*time.Hour))))
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base)))

	deleted, err := repo.DeleteOlderThan(ctx, base.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.Recent(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestActionEventRepository_DeleteAll(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Record(ctx, eventAt("session-a", "view.tasks", base)))
	require.NoError(t, repo.Record(ctx, eventAt("session-b", "view.workers", base)))

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.Recent(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
