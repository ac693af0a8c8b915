package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/quarterdeckhq/quarterdeck/internal/application/port/mocks"
	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	repomocks "github.com/quarterdeckhq/quarterdeck/internal/domain/repository/mocks"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestActionHistoryUseCase_Record_PersistsAndBroadcasts(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	broadcaster := portmocks.NewMockActionBroadcaster(t)

	event := entity.NewActionEvent("sess-1", entity.ActionViewTasks, "t", "ws")

	repo.EXPECT().Record(mock.Anything, event).Return(nil)
	broadcaster.EXPECT().BroadcastAction(mock.Anything, event).Return()

	uc := usecase.NewActionHistoryUseCase(repo, broadcaster)

	err := uc.Record(ctx, event)
	require.NoError(t, err)
}

func TestActionHistoryUseCase_Record_BroadcasterIsOptional(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	event := entity.NewActionEvent("sess-1", entity.ActionViewRefresh, "r", "tui")

	repo.EXPECT().Record(mock.Anything, event).Return(nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	err := uc.Record(ctx, event)
	require.NoError(t, err)
}

func TestActionHistoryUseCase_Record_RejectsMissingAction(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	uc := usecase.NewActionHistoryUseCase(repo, nil)

	err := uc.Record(ctx, &entity.ActionEvent{SessionID: "sess-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing an action")

	err = uc.Record(ctx, nil)
	require.Error(t, err)
}

func TestActionHistoryUseCase_Record_SkipsBroadcastOnRepoFailure(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	// No broadcaster expectation: a failed write must not be announced.
	broadcaster := portmocks.NewMockActionBroadcaster(t)

	event := entity.NewActionEvent("sess-1", entity.ActionViewTasks, "t", "ws")
	repo.EXPECT().Record(mock.Anything, event).Return(errors.New("disk full"))

	uc := usecase.NewActionHistoryUseCase(repo, broadcaster)

	err := uc.Record(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record action event")
}

func TestActionHistoryUseCase_Recent_DefaultsLimit(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)

	events := []*entity.ActionEvent{
		{ID: 2, Action: entity.ActionViewTasks, Chord: "t", Source: "ws"},
		{ID: 1, Action: entity.ActionPaletteToggle, Chord: "ctrl+k", Source: "ws"},
	}
	repo.EXPECT().Recent(mock.Anything, 50, 0).Return(events, nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	result, err := uc.Recent(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestActionHistoryUseCase_Recent_ReturnsErrorOnRepoFailure(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	repo.EXPECT().Recent(mock.Anything, 20, 0).Return(nil, errors.New("query failed"))

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	result, err := uc.Recent(ctx, 20, 0)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to get recent actions")
}

func TestActionHistoryUseCase_Analytics_ComposesStats(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)

	first := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	last := time.Date(2026, 8, 24, 18, 30, 0, 0, time.UTC)
	repo.EXPECT().Stats(mock.Anything).Return(&entity.ActionStats{
		TotalEvents:    120,
		UniqueActions:  7,
		UniqueSessions: 4,
		FirstEvent:     first,
		LastEvent:      last,
	}, nil)
	repo.EXPECT().CountSince(mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(12), nil)
	repo.EXPECT().TopActions(mock.Anything, 10).Return([]*entity.ActionCount{
		{Action: entity.ActionViewRefresh, Count: 40},
		{Action: entity.ActionPaletteToggle, Count: 25},
	}, nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	analytics, err := uc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), analytics.TotalEvents)
	assert.Equal(t, int64(7), analytics.UniqueActions)
	assert.Equal(t, int64(4), analytics.UniqueSessions)
	assert.Equal(t, first, analytics.FirstEvent)
	assert.Equal(t, last, analytics.LastEvent)
	assert.Equal(t, int64(12), analytics.Last24h)
	require.Len(t, analytics.TopActions, 2)
	assert.Equal(t, entity.ActionViewRefresh, analytics.TopActions[0].Action)
}

func TestActionHistoryUseCase_Analytics_ReturnsErrorOnStatsFailure(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	repo.EXPECT().Stats(mock.Anything).Return(nil, errors.New("db locked"))

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	analytics, err := uc.Analytics(ctx)
	require.Error(t, err)
	assert.Nil(t, analytics)
	assert.Contains(t, err.Error(), "failed to get action stats")
}

func TestActionHistoryUseCase_Purge_ZeroClearsEverything(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(int64(42), nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	removed, err := uc.Purge(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), removed)
}

func TestActionHistoryUseCase_Purge_OlderThanCutoff(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	repo.EXPECT().DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, before time.Time) {
			// 30-day cutoff lands in the past.
			assert.True(t, before.Before(time.Now().AddDate(0, 0, -29)))
		}).
		Return(int64(5), nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	removed, err := uc.Purge(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)
}

func TestActionHistoryUseCase_EnforceRetention_DisabledRemovesNothing(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	uc := usecase.NewActionHistoryUseCase(repo, nil)

	removed, err := uc.EnforceRetention(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestActionHistoryUseCase_EnforceRetention_RemovesExpired(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockActionEventRepository(t)
	repo.EXPECT().DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	uc := usecase.NewActionHistoryUseCase(repo, nil)

	removed, err := uc.EnforceRetention(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
