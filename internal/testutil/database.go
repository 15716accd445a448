// Package testutil provides fixtures shared by lifeone tests: fixed anchors,
// snapshot builders and an in-memory history database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/storage"
)

// TestDB is a migrated in-memory history database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory database, seeded with entries.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	engine.New(engine.Config{History: db.Storage, ...})
func SetupTestDB(t *testing.T, entries ...*model.HistoryEntry) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, entry := range entries {
		if err := store.SaveHistory(ctx, entry); err != nil {
			t.Fatalf("failed to seed history entry %q: %v", entry.Input, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustRecent returns up to limit history entries or fails the test.
func (db *TestDB) MustRecent(limit int) []model.HistoryEntry {
	db.t.Helper()
	entries, err := db.Storage.RecentHistory(context.Background(), limit)
	if err != nil {
		db.t.Fatalf("failed to read history: %v", err)
	}
	return entries
}
