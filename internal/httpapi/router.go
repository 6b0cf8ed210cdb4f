// Package httpapi exposes the EV engine over HTTP: a stateless handler per
// request, each constructing its own engine so concurrent requests never
// share a cache.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"blackjack-ev-engine/internal/store"
)

// Router builds the API handler. db may be nil, in which case the
// rule-profile routes, and evaluations that name a rule_profile_id, answer
// 503 Service Unavailable, and query auditing is skipped.
func Router(db *store.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	h := &handlers{db: db}

	r.Get("/api/health", h.health)
	r.Get("/api/rule-profiles", h.listRuleProfiles)
	r.Post("/api/rule-profiles", h.createRuleProfile)
	r.Post("/api/ev/{action}", h.evaluate)

	return r
}

type handlers struct {
	db *store.DB
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
