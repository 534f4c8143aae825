package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBNodeStore implements NodeStore on an embedded LevelDB. Nodes are
// stored under "<collection>/<key>".
type LevelDBNodeStore struct {
	db *leveldb.DB
}

// OpenLevelDBNodeStore opens (or creates) a LevelDB database at path.
func OpenLevelDBNodeStore(path string) (*LevelDBNodeStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", path, err)
	}
	return &LevelDBNodeStore{db: db}, nil
}

// Close closes the database.
func (l *LevelDBNodeStore) Close() error {
	return l.db.Close()
}

// Set writes the node.
func (l *LevelDBNodeStore) Set(_ context.Context, collection, key string, value json.RawMessage) error {
	if err := l.db.Put(nodeKey(collection, key), value, nil); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

// Get reads a single node.
func (l *LevelDBNodeStore) Get(_ context.Context, collection, key string) (json.RawMessage, error) {
	value, err := l.db.Get(nodeKey(collection, key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return json.RawMessage(value), nil
}

// List scans the collection's key prefix.
func (l *LevelDBNodeStore) List(_ context.Context, collection string) (map[string]json.RawMessage, error) {
	iter := l.db.NewIterator(util.BytesPrefix(collectionPrefix(collection)), nil)
	defer iter.Release()

	nodes := make(map[string]json.RawMessage)
	for iter.Next() {
		_, key := splitNodeKey(iter.Key())
		nodes[key] = copyRaw(iter.Value())
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return nodes, nil
}

// Delete removes a single node.
func (l *LevelDBNodeStore) Delete(_ context.Context, collection, key string) error {
	if err := l.db.Delete(nodeKey(collection, key), nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, key, err)
	}
	return nil
}

// DeleteCollection removes every key under the collection prefix in one batch.
func (l *LevelDBNodeStore) DeleteCollection(_ context.Context, collection string) error {
	if err := l.deleteRange(util.BytesPrefix(collectionPrefix(collection))); err != nil {
		return fmt.Errorf("delete collection %s: %w", collection, err)
	}
	return nil
}

// Counts walks every key.
func (l *LevelDBNodeStore) Counts(_ context.Context) (map[string]int, error) {
	iter := l.db.NewIterator(nil, nil)
	defer iter.Release()

	counts := make(map[string]int)
	for iter.Next() {
		collection, _ := splitNodeKey(iter.Key())
		counts[collection]++
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("count nodes: %w", err)
	}
	return counts, nil
}

// Reset deletes every key.
func (l *LevelDBNodeStore) Reset(_ context.Context) error {
	if err := l.deleteRange(nil); err != nil {
		return fmt.Errorf("reset nodes: %w", err)
	}
	return nil
}

func (l *LevelDBNodeStore) deleteRange(r *util.Range) error {
	iter := l.db.NewIterator(r, nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(copyRaw(iter.Key()))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}
	return l.db.Write(batch, nil)
}
