package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tounesna/seeder/internal/database"
)

// SQLNodeStore implements NodeStore on the nodes table of a SQLite or
// Postgres database.
type SQLNodeStore struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSQLiteNodeStore creates a SQLNodeStore for a migrated SQLite database.
func NewSQLiteNodeStore(db *sql.DB) *SQLNodeStore {
	return &SQLNodeStore{db: db, dialect: database.SQLite}
}

// NewPostgresNodeStore creates a SQLNodeStore for a migrated Postgres database.
func NewPostgresNodeStore(db *sql.DB) *SQLNodeStore {
	return &SQLNodeStore{db: db, dialect: database.Postgres}
}

func (s *SQLNodeStore) q(query string) string {
	return s.dialect.Rebind(query)
}

// Set upserts the node, keeping its original created_at.
func (s *SQLNodeStore) Set(ctx context.Context, collection, key string, value json.RawMessage) error {
	ts := now()
	_, err := s.db.ExecContext(ctx, s.q(
		`INSERT INTO nodes (collection, node_key, value, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (collection, node_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		collection, key, string(value), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

// Get retrieves a single node.
func (s *SQLNodeStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.q(
		`SELECT value FROM nodes WHERE collection = ? AND node_key = ?`),
		collection, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return json.RawMessage(value), nil
}

// List returns all nodes of a collection.
func (s *SQLNodeStore) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, s.q(
		`SELECT node_key, value FROM nodes WHERE collection = ? ORDER BY node_key ASC`),
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer func() { _ = rows.Close() }()

	nodes := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		nodes[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return nodes, nil
}

// Delete removes a single node.
func (s *SQLNodeStore) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.db.ExecContext(ctx, s.q(
		`DELETE FROM nodes WHERE collection = ? AND node_key = ?`),
		collection, key,
	); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, key, err)
	}
	return nil
}

// DeleteCollection removes every node in a collection.
func (s *SQLNodeStore) DeleteCollection(ctx context.Context, collection string) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM nodes WHERE collection = ?`), collection); err != nil {
		return fmt.Errorf("delete collection %s: %w", collection, err)
	}
	return nil
}

// Counts returns node counts grouped by collection.
func (s *SQLNodeStore) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT collection, COUNT(*) FROM nodes GROUP BY collection ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("count nodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var collection string
		var n int
		if err := rows.Scan(&collection, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[collection] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return counts, nil
}

// Reset deletes every node.
func (s *SQLNodeStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return fmt.Errorf("reset nodes: %w", err)
	}
	return nil
}
