// Package api implements the Bloom REST API using chi. It is the
// presentation boundary: every screen action of a front-end maps to one
// of these routes.
package api

import (
	"net/http"

	"github.com/minebloom/bloom/internal/companion"
)

// secretHeader carries the journal secret on gated routes.
const secretHeader = "X-Journal-Secret"

// SecretMiddleware returns middleware that gates journal routes behind
// the active session's journal secret. A mismatch is a plain denial, not
// a server error; without a session every request is denied.
func SecretMiddleware(svc *companion.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := svc.CheckSecret(r.Context(), r.Header.Get(secretHeader))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
				return
			}
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorBody("journal locked"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
