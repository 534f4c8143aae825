package nodes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/tounesna/seeder/internal/api"
	"github.com/tounesna/seeder/internal/pushid"
	"github.com/tounesna/seeder/internal/store"
)

const maxBodyBytes = 16 << 20

// Handler serves node reads and writes.
type Handler struct {
	nodes store.NodeStore

	mu  sync.Mutex // guards ids; rand.Rand is not safe for concurrent use
	ids *pushid.Generator
}

// NewHandler creates a Handler over nodes.
func NewHandler(nodes store.NodeStore) *Handler {
	return &Handler{
		nodes: nodes,
		ids:   pushid.New(rand.New(rand.NewSource(time.Now().UnixNano()))), //nolint:gosec // ids need not be unpredictable
	}
}

func (h *Handler) path(w http.ResponseWriter, r *http.Request) (nodePath, bool) {
	p, err := parsePath(r.PathValue("path"))
	if err != nil {
		corrID := api.CorrelationID(r.Context())
		if errors.Is(err, errNoJSONSuffix) {
			api.WriteError(w, http.StatusNotFound, api.NewError(api.MsgNotFound, corrID))
		} else {
			api.WriteError(w, http.StatusBadRequest, api.NewError(err.Error(), corrID))
		}
		return nodePath{}, false
	}
	return p, true
}

// Get handles GET on the root, a collection or a node. Empty locations read
// as null. ?shallow=true on a collection returns {"<id>": true, ...}, and
// orderBy with its filters narrows a collection read.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.path(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	switch {
	case p.IsRoot():
		tree, err := h.tree(ctx)
		if err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
		if len(tree) == 0 {
			api.WriteJSON(w, http.StatusOK, nil)
			return
		}
		api.WriteJSON(w, http.StatusOK, tree)

	case p.IsCollection():
		q, err := parseQuery(r.URL.Query())
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, api.NewError(err.Error(), api.CorrelationID(ctx)))
			return
		}
		children, err := h.nodes.List(ctx, p.Collection)
		if err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
		if q != nil {
			children = q.apply(children)
		}
		if len(children) == 0 {
			api.WriteJSON(w, http.StatusOK, nil)
			return
		}
		if r.URL.Query().Get("shallow") == "true" {
			keys := make(map[string]bool, len(children))
			for k := range children {
				keys[k] = true
			}
			api.WriteJSON(w, http.StatusOK, keys)
			return
		}
		api.WriteJSON(w, http.StatusOK, children)

	default:
		value, err := h.nodes.Get(ctx, p.Collection, p.Key)
		if errors.Is(err, store.ErrNotFound) {
			api.WriteJSON(w, http.StatusOK, nil)
			return
		}
		if err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
		api.WriteRaw(w, http.StatusOK, value)
	}
}

// Put replaces the value at a collection or node. A null body deletes it.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	p, ok := h.path(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	switch {
	case p.IsRoot():
		api.WriteError(w, http.StatusBadRequest, api.NewError("writes to the root are not supported", api.CorrelationID(ctx)))
		return

	case p.IsCollection():
		children, ok := decodeChildren(w, r, body)
		if !ok {
			return
		}
		if err := h.nodes.DeleteCollection(ctx, p.Collection); err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
		if err := h.writeChildren(ctx, p.Collection, children); err != nil {
			api.WriteInternalError(w, r, err)
			return
		}

	default:
		var err error
		if isNull(body) {
			err = h.nodes.Delete(ctx, p.Collection, p.Key)
		} else {
			err = h.nodes.Set(ctx, p.Collection, p.Key, body)
		}
		if err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
	}

	api.WriteRaw(w, http.StatusOK, body)
}

// Patch updates the named children of a collection or the named fields of a
// node, leaving everything else in place. Null values delete.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	p, ok := h.path(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if p.IsRoot() {
		api.WriteError(w, http.StatusBadRequest, api.NewError("writes to the root are not supported", api.CorrelationID(ctx)))
		return
	}

	fields, ok := decodeChildren(w, r, body)
	if !ok {
		return
	}

	if p.IsCollection() {
		if err := h.writeChildren(ctx, p.Collection, fields); err != nil {
			api.WriteInternalError(w, r, err)
			return
		}
		api.WriteRaw(w, http.StatusOK, body)
		return
	}

	merged := make(map[string]json.RawMessage)
	current, err := h.nodes.Get(ctx, p.Collection, p.Key)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		api.WriteInternalError(w, r, err)
		return
	default:
		// A scalar node is replaced by the patch object.
		_ = json.Unmarshal(current, &merged)
	}
	for k, v := range fields {
		if isNull(v) {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	if len(merged) == 0 {
		err = h.nodes.Delete(ctx, p.Collection, p.Key)
	} else {
		var value []byte
		value, err = json.Marshal(merged)
		if err == nil {
			err = h.nodes.Set(ctx, p.Collection, p.Key, value)
		}
	}
	if err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	api.WriteRaw(w, http.StatusOK, body)
}

// Post stores the body under a new push id in a collection and answers
// {"name": "<id>"}.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	p, ok := h.path(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if !p.IsCollection() {
		api.WriteError(w, http.StatusBadRequest, api.NewError(fmt.Sprintf("push is not supported on %s", p), api.CorrelationID(ctx)))
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	if isNull(body) {
		api.WriteError(w, http.StatusBadRequest, api.NewError(api.MsgInvalidData, api.CorrelationID(ctx)))
		return
	}

	id, err := h.freshID(ctx, p.Collection)
	if err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	if err := h.nodes.Set(ctx, p.Collection, id, body); err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"name": id})
}

// Delete removes the root, a collection or a node and answers null.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := h.path(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var err error
	switch {
	case p.IsRoot():
		err = h.nodes.Reset(ctx)
	case p.IsCollection():
		err = h.nodes.DeleteCollection(ctx, p.Collection)
	default:
		err = h.nodes.Delete(ctx, p.Collection, p.Key)
	}
	if err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) tree(ctx context.Context) (map[string]map[string]json.RawMessage, error) {
	counts, err := h.nodes.Counts(ctx)
	if err != nil {
		return nil, err
	}
	tree := make(map[string]map[string]json.RawMessage, len(counts))
	for collection := range counts {
		children, err := h.nodes.List(ctx, collection)
		if err != nil {
			return nil, err
		}
		if len(children) > 0 {
			tree[collection] = children
		}
	}
	return tree, nil
}

func (h *Handler) writeChildren(ctx context.Context, collection string, children map[string]json.RawMessage) error {
	for key, value := range children {
		var err error
		if isNull(value) {
			err = h.nodes.Delete(ctx, collection, key)
		} else {
			err = h.nodes.Set(ctx, collection, key, value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// freshID draws push ids until one is unused in collection.
func (h *Handler) freshID(ctx context.Context, collection string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		h.mu.Lock()
		id := h.ids.Next()
		h.mu.Unlock()

		_, err := h.nodes.Get(ctx, collection, id)
		if errors.Is(err, store.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no free push id in %s", collection)
}

// readBody reads and validates a JSON request body, answering 400 itself when
// the body is not JSON.
func readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(b) {
		api.WriteError(w, http.StatusBadRequest, api.NewError(api.MsgInvalidData, api.CorrelationID(r.Context())))
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewError(api.MsgInvalidData, api.CorrelationID(r.Context())))
		return nil, false
	}
	return buf.Bytes(), true
}

// decodeChildren decodes an object body into its children, validating the
// keys. A null body decodes to no children.
func decodeChildren(w http.ResponseWriter, r *http.Request, body json.RawMessage) (map[string]json.RawMessage, bool) {
	children := make(map[string]json.RawMessage)
	if isNull(body) {
		return children, true
	}
	if err := json.Unmarshal(body, &children); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewError(api.MsgInvalidData, api.CorrelationID(r.Context())))
		return nil, false
	}
	for key := range children {
		if !validKey(key) {
			api.WriteError(w, http.StatusBadRequest, api.NewError(fmt.Sprintf("invalid key %q", key), api.CorrelationID(r.Context())))
			return nil, false
		}
	}
	return children, true
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
