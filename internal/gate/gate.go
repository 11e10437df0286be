// Package gate decides which screen an authenticated caller may enter and
// enforces the per-day chat quota. Every decision is a pure function of its
// inputs; nothing is cached between requests, so callers re-evaluate on each
// request with a freshly loaded profile.
package gate

import "server/internal/domain"

// Mode enumerates the mutually exclusive screens a session resolves to.
type Mode string

const (
	ModeUnauthenticated Mode = "unauthenticated"
	ModePendingApproval Mode = "pending_approval"
	ModeDownloader      Mode = "downloader"
	ModeChatDisabled    Mode = "chat_disabled"
	ModeQuotaExceeded   Mode = "quota_exceeded"
	ModeChatReady       Mode = "chat_ready"
)

// Surface is the screen the caller asks to enter. The gate never chooses
// between the downloader and the chatbot on its own.
type Surface string

const (
	SurfaceDownloader Surface = "downloader"
	SurfaceChatbot    Surface = "chatbot"
)

// DateFormat lays out calendar days the way the profile store does.
const DateFormat = "2006-01-02"

// DailyChatLimit caps counted chatbot questions per calendar day.
const DailyChatLimit = 2

// ResolveMode maps a session, its profile, and the requested surface to a
// Mode. Checks run in a fixed order and the first match wins: a missing or
// unapproved profile always resolves to PendingApproval before any chat
// check is reached. today is injected as a DateFormat string.
func ResolveMode(session domain.Session, profile *domain.Profile, surface Surface, today string) Mode {
	if !session.Authenticated || session.UserID == "" {
		return ModeUnauthenticated
	}
	if profile == nil || !profile.Approved {
		return ModePendingApproval
	}
	if surface != SurfaceChatbot {
		return ModeDownloader
	}
	if !profile.CanChat {
		return ModeChatDisabled
	}
	if !QuotaAllows(*profile, today) {
		return ModeQuotaExceeded
	}
	return ModeChatReady
}

// QuotaAllows reports whether the profile may ask another question today.
// Only the stored date is compared: a profile blocked yesterday is eligible
// again today no matter how large the stored counter is.
func QuotaAllows(profile domain.Profile, today string) bool {
	return profile.LastChatDate != today || profile.DailyChatCount < DailyChatLimit
}

// Remaining returns how many counted questions the profile has left today.
func Remaining(profile domain.Profile, today string) int {
	if profile.LastChatDate != today {
		return DailyChatLimit
	}
	left := DailyChatLimit - profile.DailyChatCount
	if left < 0 {
		return 0
	}
	return left
}

// Consume marks one completed chat exchange on the profile. It sets the
// counter to 1 instead of incrementing it, preserving the store's historical
// behavior; through this path alone the counter never reaches the limit.
// Callers persist the result via ProfileRepository.RecordChat.
func Consume(profile *domain.Profile, today string) {
	profile.DailyChatCount = 1
	profile.LastChatDate = today
}
