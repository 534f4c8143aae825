package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tounesna/seeder/internal/api"
	"github.com/tounesna/seeder/internal/api/admin"
	"github.com/tounesna/seeder/internal/domain"
	"github.com/tounesna/seeder/internal/store"
	"github.com/tounesna/seeder/internal/testhelpers"
)

func setupServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	s := testhelpers.NewTestStore(t)

	mux := http.NewServeMux()
	admin.RegisterRoutes(mux, s)

	srv := httptest.NewServer(api.Chain(mux, api.RequestID()))
	t.Cleanup(srv.Close)
	return srv, s
}

func TestStats(t *testing.T) {
	srv, s := setupServer(t)
	ctx := context.Background()

	for _, key := range []string{"-1", "-2", "-3"} {
		if err := s.Nodes.Set(ctx, "posts", key, json.RawMessage(`{"title":"x"}`)); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	if err := s.Nodes.Set(ctx, "volunteers", "-4", json.RawMessage(`{"name":"y"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	resp, err := http.Get(srv.URL + "/_emulator/stats")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Backend     string         `json:"backend"`
		Collections map[string]int `json:"collections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Backend != store.BackendSQLite {
		t.Errorf("backend = %q, want %q", body.Backend, store.BackendSQLite)
	}
	if body.Collections["posts"] != 3 || body.Collections["volunteers"] != 1 {
		t.Errorf("collections = %v", body.Collections)
	}
	if n, ok := body.Collections["ratings"]; !ok || n != 0 {
		t.Errorf("ratings = %d (listed %v), want 0", n, ok)
	}
	if len(body.Collections) != len(domain.Collections) {
		t.Errorf("collections = %v, want the %d known ones", body.Collections, len(domain.Collections))
	}
}

func TestReset(t *testing.T) {
	srv, s := setupServer(t)
	ctx := context.Background()

	if err := s.Nodes.Set(ctx, "organizations", "-1", json.RawMessage(`{"name":"Hope Foundation"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	resp, err := http.Post(srv.URL+"/_emulator/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	counts, err := s.Nodes.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts after reset = %v, want empty", counts)
	}
}

func TestResetRequiresPost(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Get(srv.URL + "/_emulator/reset")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}
