package nodes

import (
	"net/http"

	"github.com/tounesna/seeder/internal/store"
)

// RegisterRoutes adds the REST data endpoints to the given mux. Every path is
// a node address ending in .json.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := NewHandler(s.Nodes)

	mux.HandleFunc("GET /{path...}", h.Get)
	mux.HandleFunc("PUT /{path...}", h.Put)
	mux.HandleFunc("PATCH /{path...}", h.Patch)
	mux.HandleFunc("POST /{path...}", h.Post)
	mux.HandleFunc("DELETE /{path...}", h.Delete)
}
