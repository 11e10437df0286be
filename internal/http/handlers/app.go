package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"server/internal/domain"
	"server/internal/gate"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/providers/answer"
)

// TranscriptFetcher downloads ordered caption segments for a video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, prefs []language.Tag) ([]domain.Segment, error)
}

// App is the handler container. Everything is injected so tests can swap in
// fakes; Answerer and GeoIP may be nil when unconfigured.
type App struct {
	Logger      zerolog.Logger
	JWTSecret   string
	Accounts    domain.AccountRepository
	Profiles    domain.ProfileRepository
	Transcripts domain.TranscriptRepository
	Usage       domain.UsageRepository
	Fetcher     TranscriptFetcher
	Answerer    answer.Provider
	GeoIP       geoip.CountryResolver
	Now         func() time.Time // injectable clock for quota dates
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, status, message string) {
	a.json(w, code, map[string]string{"error": status, "message": message})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) currentSession(r *http.Request) domain.Session {
	id := a.currentUserID(r)
	return domain.Session{UserID: id, Authenticated: id != ""}
}

func (a *App) today() string {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return now().Format(gate.DateFormat)
}

// loadProfile fetches the caller's profile. A missing row is not an error
// here: the gate resolves it to pending approval.
func (a *App) loadProfile(ctx context.Context, userID string) (*domain.Profile, bool) {
	profile, err := a.Profiles.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, true
		}
		return nil, false
	}
	return profile, true
}

// denyByMode writes the response for every gate outcome that blocks the
// requested surface.
func (a *App) denyByMode(w http.ResponseWriter, mode gate.Mode) {
	switch mode {
	case gate.ModeUnauthenticated:
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
	case gate.ModePendingApproval:
		a.error(w, http.StatusForbidden, "pending_approval", "awaiting admin approval")
	case gate.ModeChatDisabled:
		a.error(w, http.StatusForbidden, "chat_disabled", "chatbot not enabled for your account")
	case gate.ModeQuotaExceeded:
		a.error(w, http.StatusTooManyRequests, "quota_exceeded", "daily quota (2 questions) reached")
	default:
		a.error(w, http.StatusForbidden, "forbidden", "not allowed")
	}
}

func (a *App) recordUsage(ctx context.Context, event domain.UsageEvent) {
	if a.Usage == nil {
		return
	}
	if err := a.Usage.Insert(ctx, &event); err != nil {
		a.Logger.Error().Err(err).Str("kind", event.Kind).Msg("record usage failed")
	}
}

type profileDTO struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Approved       bool   `json:"approved"`
	CanChat        bool   `json:"can_chat"`
	DailyChatCount int    `json:"daily_chat_count"`
	LastChatDate   string `json:"last_chat_date,omitempty"`
	RemainingQuota int    `json:"remaining_quota"`
}

func (a *App) profileDTO(profile *domain.Profile) profileDTO {
	if profile == nil {
		return profileDTO{}
	}
	return profileDTO{
		ID:             profile.ID,
		Email:          profile.Email,
		FullName:       profile.FullName,
		Approved:       profile.Approved,
		CanChat:        profile.CanChat,
		DailyChatCount: profile.DailyChatCount,
		LastChatDate:   profile.LastChatDate,
		RemainingQuota: gate.Remaining(*profile, a.today()),
	}
}
