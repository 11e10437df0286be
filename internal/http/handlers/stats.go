package handlers

import (
	"net/http"
)

// StatsSummary reports per-kind usage totals over the last 24 hours.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	items, err := a.Usage.Summary(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("load stats failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
