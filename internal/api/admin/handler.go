package admin

import (
	"net/http"

	"github.com/tounesna/seeder/internal/api"
	"github.com/tounesna/seeder/internal/domain"
	"github.com/tounesna/seeder/internal/store"
)

// Handler serves the admin API at /_emulator/.
type Handler struct {
	store *store.Store
}

// Reset removes every node from every collection.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Nodes.Reset(r.Context()); err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statsResponse struct {
	Backend     string         `json:"backend"`
	Collections map[string]int `json:"collections"`
}

// Stats reports the number of nodes held in each collection. Known
// collections are listed even when empty.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.Nodes.Counts(r.Context())
	if err != nil {
		api.WriteInternalError(w, r, err)
		return
	}
	for _, c := range domain.Collections {
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
	}
	api.WriteJSON(w, http.StatusOK, statsResponse{
		Backend:     h.store.Backend,
		Collections: counts,
	})
}
