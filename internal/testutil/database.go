// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"

	"github.com/sidecash/sidecash/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite database and registers
// cleanup with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return store
}
