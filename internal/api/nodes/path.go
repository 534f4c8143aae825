package nodes

import (
	"errors"
	"regexp"
	"strings"
)

var (
	errNoJSONSuffix = errors.New("path must end in .json")
	errTooDeep      = errors.New("only /{collection}.json and /{collection}/{id}.json are supported")
	errInvalidPath  = errors.New("invalid path")
)

var collectionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// nodePath addresses the root (both empty), a collection (Key empty) or a
// single node.
type nodePath struct {
	Collection string
	Key        string
}

func (p nodePath) IsRoot() bool       { return p.Collection == "" }
func (p nodePath) IsCollection() bool { return p.Collection != "" && p.Key == "" }

func (p nodePath) String() string {
	switch {
	case p.IsRoot():
		return "/"
	case p.IsCollection():
		return "/" + p.Collection
	}
	return "/" + p.Collection + "/" + p.Key
}

// parsePath parses the wildcard part of a request path such as
// "volunteers/-1732587000000123.json".
func parsePath(raw string) (nodePath, error) {
	raw = strings.TrimPrefix(raw, "/")
	if !strings.HasSuffix(raw, ".json") {
		return nodePath{}, errNoJSONSuffix
	}
	raw = strings.TrimSuffix(strings.TrimSuffix(raw, ".json"), "/")
	if raw == "" {
		return nodePath{}, nil
	}

	parts := strings.Split(raw, "/")
	if len(parts) > 2 {
		return nodePath{}, errTooDeep
	}
	// Names starting with _ are reserved for the emulator's own endpoints.
	if !collectionPattern.MatchString(parts[0]) || strings.HasPrefix(parts[0], "_") {
		return nodePath{}, errInvalidPath
	}

	p := nodePath{Collection: parts[0]}
	if len(parts) == 2 {
		if !validKey(parts[1]) {
			return nodePath{}, errInvalidPath
		}
		p.Key = parts[1]
	}
	return p, nil
}

// validKey rejects keys the store cannot address: empty, or containing
// . $ # [ ] / or ASCII control characters.
func validKey(key string) bool {
	if key == "" || len(key) > 768 {
		return false
	}
	for _, r := range key {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(".$#[]/", r) {
			return false
		}
	}
	return true
}
