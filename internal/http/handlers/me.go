package handlers

import (
	"net/http"

	"server/internal/gate"
)

type meResponse struct {
	User  profileDTO           `json:"user"`
	Modes map[string]gate.Mode `json:"modes"`
}

// Me returns the caller's profile together with the gate decision for each
// surface, so the client can render the proper screen without re-deriving
// the rules.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(r)
	if !session.Authenticated {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	profile, ok := a.loadProfile(r.Context(), session.UserID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	today := a.today()
	a.json(w, http.StatusOK, meResponse{
		User: a.profileDTO(profile),
		Modes: map[string]gate.Mode{
			string(gate.SurfaceDownloader): gate.ResolveMode(session, profile, gate.SurfaceDownloader, today),
			string(gate.SurfaceChatbot):    gate.ResolveMode(session, profile, gate.SurfaceChatbot, today),
		},
	})
}
