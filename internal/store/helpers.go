package store

import (
	"encoding/json"
	"strings"
	"time"
)

// now returns the current UTC time formatted as an RFC 3339 timestamp with
// millisecond precision.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// leveldb keys are "<collection>/<key>"; collection names never contain '/'.
const keySep = "/"

func nodeKey(collection, key string) []byte {
	return []byte(collection + keySep + key)
}

func collectionPrefix(collection string) []byte {
	return []byte(collection + keySep)
}

func splitNodeKey(k []byte) (collection, key string) {
	collection, key, _ = strings.Cut(string(k), keySep)
	return collection, key
}

// copyRaw detaches a value from a buffer the backend may reuse.
func copyRaw(b []byte) json.RawMessage {
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out
}
