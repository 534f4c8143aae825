package testhelpers

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/tounesna/seeder/internal/database"
	"github.com/tounesna/seeder/internal/emulator"
	"github.com/tounesna/seeder/internal/store"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production. The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewTestStore returns a migrated in-memory SQLite store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return store.New(store.BackendSQLite, store.NewSQLiteNodeStore(db), nil)
}

// NewServer starts the full emulator over an in-memory store with open
// security rules. The server is closed when the test completes.
func NewServer(t *testing.T) *httptest.Server {
	t.Helper()
	return NewServerWithSecret(t, "")
}

// NewServerWithSecret is NewServer with the database secret set.
func NewServerWithSecret(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(emulator.NewHandler(NewTestStore(t), secret))
	t.Cleanup(srv.Close)

	return srv
}
