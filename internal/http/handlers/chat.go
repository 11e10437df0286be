package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"server/internal/domain"
	"server/internal/gate"
)

const chatSystemPrompt = "Use only the transcript."

type chatRequest struct {
	VideoID  string `json:"video_id"`
	Question string `json:"question"`
}

type chatResponse struct {
	VideoID        string `json:"video_id"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	RemainingQuota int    `json:"remaining_quota"`
}

// ChatAsk answers one question against a stored transcript. The full gate
// chain runs before anything else: authentication, approval, chat access,
// then the daily quota. A completed exchange records the quota write.
func (a *App) ChatAsk(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(r)
	profile, ok := a.loadProfile(r.Context(), session.UserID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	today := a.today()
	if mode := gate.ResolveMode(session, profile, gate.SurfaceChatbot, today); mode != gate.ModeChatReady {
		a.denyByMode(w, mode)
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.VideoID = strings.TrimSpace(req.VideoID)
	req.Question = strings.TrimSpace(req.Question)
	if req.VideoID == "" || req.Question == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "video_id and question required")
		return
	}
	if a.Answerer == nil {
		a.error(w, http.StatusServiceUnavailable, "provider_unavailable", "chat provider not configured")
		return
	}
	text, err := a.Transcripts.GetText(r.Context(), req.VideoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "transcript not found")
			return
		}
		a.Logger.Error().Err(err).Str("video_id", req.VideoID).Msg("load transcript failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load transcript")
		return
	}
	userPrompt := fmt.Sprintf("Answer only from this transcript:\n%s\n\nQ: %s\nA:", text, req.Question)
	answerText, err := a.Answerer.Complete(r.Context(), chatSystemPrompt, userPrompt)
	if err != nil {
		a.Logger.Error().Err(err).Str("video_id", req.VideoID).Msg("answer provider failed")
		a.recordUsage(r.Context(), domain.UsageEvent{
			UserID: session.UserID, VideoID: req.VideoID, Kind: domain.UsageKindChatAsk, Success: false,
		})
		a.error(w, http.StatusBadGateway, "provider_error", err.Error())
		return
	}
	gate.Consume(profile, today)
	if err := a.Profiles.RecordChat(r.Context(), session.UserID, today); err != nil {
		// The answer already succeeded; losing the quota write only makes
		// the quota more permissive, so log and move on.
		a.Logger.Error().Err(err).Str("user_id", session.UserID).Msg("record chat failed")
	}
	a.recordUsage(r.Context(), domain.UsageEvent{
		UserID: session.UserID, VideoID: req.VideoID, Kind: domain.UsageKindChatAsk, Success: true,
	})
	a.json(w, http.StatusOK, chatResponse{
		VideoID:        req.VideoID,
		Question:       req.Question,
		Answer:         answerText,
		RemainingQuota: gate.Remaining(*profile, today),
	})
}
