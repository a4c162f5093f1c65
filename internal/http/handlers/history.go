package handlers

import (
	"net/http"
	"strconv"

	"heritage-server/internal/audit"
	"heritage-server/internal/middleware"
)

// History answers GET /v1/history: the caller's recent lookups, newest
// first. Unlike the search routes this one requires identity, since the rows
// are keyed by user.
func (a *App) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	entries, err := a.Audit.History(r.Context(), userID, limit)
	if err != nil {
		a.Log.Error().Err(err).Msg("history query failed")
		a.error(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": entries})
}
