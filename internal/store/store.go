package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when a node holds no value.
var ErrNotFound = errors.New("node not found")

// NodeStore persists JSON values addressed by collection and key.
type NodeStore interface {
	// Set creates or fully replaces the value at collection/key.
	Set(ctx context.Context, collection, key string, value json.RawMessage) error
	// Get returns the value at collection/key or ErrNotFound.
	Get(ctx context.Context, collection, key string) (json.RawMessage, error)
	// List returns every value in collection keyed by key. An empty
	// collection yields an empty map.
	List(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	// Delete removes collection/key. Deleting a missing node is not an error.
	Delete(ctx context.Context, collection, key string) error
	// DeleteCollection removes every node in collection.
	DeleteCollection(ctx context.Context, collection string) error
	// Counts returns the number of nodes per non-empty collection.
	Counts(ctx context.Context) (map[string]int, error)
	// Reset removes every node.
	Reset(ctx context.Context) error
}

// Store holds the node store and the resources backing it.
type Store struct {
	Nodes   NodeStore
	Backend string
	closer  io.Closer
}

// New wraps a NodeStore. closer, if non-nil, is closed by Close.
func New(backend string, nodes NodeStore, closer io.Closer) *Store {
	return &Store{Nodes: nodes, Backend: backend, closer: closer}
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("close %s store: %w", s.Backend, err)
	}
	return nil
}
