package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/repository"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

// ActionHistoryUseCase records dispatched actions and answers history
// queries.
type ActionHistoryUseCase struct {
	repo        repository.ActionEventRepository
	broadcaster port.ActionBroadcaster
}

// NewActionHistoryUseCase creates a new action history use case. The
// broadcaster is optional; when nil, recorded events are persisted but not
// announced to monitor subscribers.
func NewActionHistoryUseCase(repo repository.ActionEventRepository, broadcaster port.ActionBroadcaster) *ActionHistoryUseCase {
	return &ActionHistoryUseCase{
		repo:        repo,
		broadcaster: broadcaster,
	}
}

// Record persists a dispatched action and announces it to subscribers.
func (uc *ActionHistoryUseCase) Record(ctx context.Context, event *entity.ActionEvent) error {
	if uc == nil || uc.repo == nil {
		return fmt.Errorf("action event repository is nil")
	}
	if event == nil || event.Action == "" {
		return fmt.Errorf("action event is missing an action")
	}

	log := logging.FromContext(ctx)

	if err := uc.repo.Record(ctx, event); err != nil {
		return fmt.Errorf("failed to record action event: %w", err)
	}

	if uc.broadcaster != nil {
		uc.broadcaster.BroadcastAction(ctx, event)
	}

	log.Debug().
		Str("action", event.Action).
		Str("chord", event.Chord).
		Str("source", event.Source).
		Msg("action recorded")
	return nil
}

// Recent retrieves recent action events with pagination, newest first.
func (uc *ActionHistoryUseCase) Recent(ctx context.Context, limit, offset int) ([]*entity.ActionEvent, error) {
	if uc == nil || uc.repo == nil {
		return nil, fmt.Errorf("action event repository is nil")
	}

	if limit <= 0 {
		limit = 50 // Default limit
	}

	events, err := uc.repo.Recent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent actions: %w", err)
	}
	return events, nil
}

// Analytics aggregates history statistics: totals, the last-24h count and
// the ten most dispatched actions.
func (uc *ActionHistoryUseCase) Analytics(ctx context.Context) (*entity.ActionAnalytics, error) {
	if uc == nil || uc.repo == nil {
		return nil, fmt.Errorf("action event repository is nil")
	}

	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get action stats: %w", err)
	}

	last24h, err := uc.repo.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent actions: %w", err)
	}

	top, err := uc.repo.TopActions(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to get top actions: %w", err)
	}

	return &entity.ActionAnalytics{
		TotalEvents:    stats.TotalEvents,
		UniqueActions:  stats.UniqueActions,
		UniqueSessions: stats.UniqueSessions,
		FirstEvent:     stats.FirstEvent,
		LastEvent:      stats.LastEvent,
		Last24h:        last24h,
		TopActions:     top,
	}, nil
}

// Purge deletes history older than the given number of days. Zero or
// negative days clears everything. Returns the number of removed events.
func (uc *ActionHistoryUseCase) Purge(ctx context.Context, olderThanDays int) (int64, error) {
	if uc == nil || uc.repo == nil {
		return 0, fmt.Errorf("action event repository is nil")
	}

	log := logging.FromContext(ctx)

	if olderThanDays <= 0 {
		removed, err := uc.repo.DeleteAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to clear action history: %w", err)
		}
		log.Info().Int64("removed", removed).Msg("action history cleared")
		return removed, nil
	}

	before := time.Now().AddDate(0, 0, -olderThanDays)
	removed, err := uc.repo.DeleteOlderThan(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge action history: %w", err)
	}
	log.Info().Int64("removed", removed).Time("before", before).Msg("action history purged")
	return removed, nil
}

// EnforceRetention applies the configured retention window. A window of zero
// or less disables retention and removes nothing.
func (uc *ActionHistoryUseCase) EnforceRetention(ctx context.Context, retentionDays int) (int64, error) {
	if uc == nil || uc.repo == nil {
		return 0, fmt.Errorf("action event repository is nil")
	}
	if retentionDays <= 0 {
		return 0, nil
	}

	before := time.Now().AddDate(0, 0, -retentionDays)
	removed, err := uc.repo.DeleteOlderThan(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to enforce retention: %w", err)
	}

	if removed > 0 {
		logging.FromContext(ctx).Info().
			Int64("removed", removed).
			Int("retention_days", retentionDays).
			Msg("expired action history removed")
	}
	return removed, nil
}
