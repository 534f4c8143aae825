package store

import (
	"context"
	"fmt"

	"github.com/tounesna/seeder/internal/database"
)

// Storage backends selectable at startup.
const (
	BackendSQLite   = "sqlite"
	BackendLevelDB  = "leveldb"
	BackendPostgres = "postgres"
)

// Open opens the named backend. dsn is a SQLite file (or ":memory:"), a
// LevelDB directory, or a Postgres connection string. SQL backends are
// migrated before Open returns.
func Open(ctx context.Context, backend, dsn string) (*Store, error) {
	switch backend {
	case BackendSQLite, "":
		db, err := database.Open(dsn)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return New(BackendSQLite, NewSQLiteNodeStore(db), db), nil

	case BackendPostgres:
		db, err := database.OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateDialect(ctx, db, database.Postgres); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return New(BackendPostgres, NewPostgresNodeStore(db), db), nil

	case BackendLevelDB:
		nodes, err := OpenLevelDBNodeStore(dsn)
		if err != nil {
			return nil, err
		}
		return New(BackendLevelDB, nodes, nodes), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
