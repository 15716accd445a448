package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/model"
)

// DefaultHistoryLimit is used when RecentHistory is asked for zero entries.
const DefaultHistoryLimit = 20

const historyColumns = `id, input, used_model, reason, can_handle, clarification_needed,
	answer, processing_details, output, created_at`

// SaveHistory records one processed request.
func (s *SQLiteStorage) SaveHistory(ctx context.Context, entry *model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistoryEntry(entry); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	output, err := json.Marshal(entry.Output)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO history (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Input, entry.UsedModel, string(entry.Reason), entry.CanHandle, entry.Clarification,
		entry.Answer, entry.ProcessingDetails, string(output), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// RecentHistory returns up to limit entries, newest first.
func (s *SQLiteStorage) RecentHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	switch {
	case limit < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	case limit == 0:
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+historyColumns+`
		FROM history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []model.HistoryEntry{}
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}

// GetHistory returns a single entry by ID.
func (s *SQLiteStorage) GetHistory(ctx context.Context, id string) (*model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM history WHERE id = ?`, id)
	entry, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("history entry %s: %w", id, common.ErrNotFound)
	}
	return entry, err
}

// PruneHistory deletes entries created before cutoff.
func (s *SQLiteStorage) PruneHistory(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(row scanner) (*model.HistoryEntry, error) {
	var (
		entry  model.HistoryEntry
		reason string
		output string
	)

	err := row.Scan(&entry.ID, &entry.Input, &entry.UsedModel, &reason, &entry.CanHandle, &entry.Clarification,
		&entry.Answer, &entry.ProcessingDetails, &output, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan history entry: %w", err)
	}

	entry.Reason = model.Reason(reason)
	entry.Output = model.NewExtractionResult()
	if err := json.Unmarshal([]byte(output), &entry.Output); err != nil {
		return nil, fmt.Errorf("failed to decode output of %s: %w", entry.ID, err)
	}
	return &entry, nil
}
