package repository

import (
	"context"
	"time"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// ActionEventRepository defines operations for dispatched-action persistence.
type ActionEventRepository interface {
	// Record stores a dispatched action event.
	Record(ctx context.Context, event *entity.ActionEvent) error

	// Recent retrieves recent action events with pagination, newest first.
	Recent(ctx context.Context, limit, offset int) ([]*entity.ActionEvent, error)

	// CountSince counts events recorded at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// Stats retrieves overall action-history statistics.
	Stats(ctx context.Context) (*entity.ActionStats, error)

	// TopActions retrieves the most frequently dispatched actions.
	TopActions(ctx context.Context, limit int) ([]*entity.ActionCount, error)

	// DeleteOlderThan removes events older than the given time and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)

	// DeleteAll removes all action events and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
