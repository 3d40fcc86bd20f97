package api

import "net/http"

// health is a simple liveness endpoint. Always 200, no auth, regardless of
// server state.
func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
