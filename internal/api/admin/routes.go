package admin

import (
	"net/http"

	"github.com/tounesna/seeder/internal/store"
)

// RegisterRoutes registers the emulator admin endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /_emulator/reset", h.Reset)
	mux.HandleFunc("GET /_emulator/stats", h.Stats)
}
