// Package emulator assembles the local realtime database emulator: the node
// REST endpoints, the admin endpoints and the middleware chain around them.
package emulator

import (
	"fmt"
	"net/http"

	"github.com/tounesna/seeder/internal/api"
	"github.com/tounesna/seeder/internal/api/admin"
	"github.com/tounesna/seeder/internal/api/nodes"
	"github.com/tounesna/seeder/internal/store"
)

// NewHandler returns the emulator's root handler. An empty secret disables
// authentication.
func NewHandler(s *store.Store, secret string) http.Handler {
	mux := http.NewServeMux()

	nodes.RegisterRoutes(mux, s)
	admin.RegisterRoutes(mux, s)

	// Catch-all for methods the REST interface does not support.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusMethodNotAllowed, api.NewError(
			fmt.Sprintf("Method %s not supported on %s", r.Method, r.URL.Path),
			corrID,
		))
	})

	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth(secret),
		api.JSONContentType(),
		api.Logging(),
	)
}
