// Package service defines the interfaces shared between application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/lifeone/internal/model"
)

// HistoryStore is the contract for the request-history log.
type HistoryStore interface {
	// SaveHistory records one processed request. A missing ID or timestamp is filled in.
	SaveHistory(ctx context.Context, entry *model.HistoryEntry) error
	// RecentHistory returns up to limit entries, newest first.
	RecentHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	// GetHistory returns a single entry by ID.
	GetHistory(ctx context.Context, id string) (*model.HistoryEntry, error)
	// PruneHistory deletes entries created before cutoff and reports how many were removed.
	PruneHistory(ctx context.Context, cutoff time.Time) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
