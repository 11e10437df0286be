package gate

import (
	"testing"

	"server/internal/domain"
)

const (
	today     = "2024-01-01"
	yesterday = "2023-12-31"
)

func TestResolveMode(t *testing.T) {
	session := domain.Session{UserID: "user-1", Authenticated: true}

	tests := []struct {
		name    string
		session domain.Session
		profile *domain.Profile
		surface Surface
		want    Mode
	}{
		{
			name:    "unauthenticated session",
			session: domain.Session{},
			profile: &domain.Profile{Approved: true, CanChat: true},
			surface: SurfaceChatbot,
			want:    ModeUnauthenticated,
		},
		{
			name:    "missing profile",
			session: session,
			profile: nil,
			surface: SurfaceDownloader,
			want:    ModePendingApproval,
		},
		{
			name:    "unapproved profile wins over every other flag",
			session: session,
			profile: &domain.Profile{Approved: false, CanChat: true, DailyChatCount: 0},
			surface: SurfaceChatbot,
			want:    ModePendingApproval,
		},
		{
			name:    "approved downloader",
			session: session,
			profile: &domain.Profile{Approved: true},
			surface: SurfaceDownloader,
			want:    ModeDownloader,
		},
		{
			name:    "chat not enabled",
			session: session,
			profile: &domain.Profile{Approved: true, CanChat: false},
			surface: SurfaceChatbot,
			want:    ModeChatDisabled,
		},
		{
			name:    "quota exhausted today",
			session: session,
			profile: &domain.Profile{Approved: true, CanChat: true, DailyChatCount: 2, LastChatDate: today},
			surface: SurfaceChatbot,
			want:    ModeQuotaExceeded,
		},
		{
			name:    "chat ready",
			session: session,
			profile: &domain.Profile{Approved: true, CanChat: true},
			surface: SurfaceChatbot,
			want:    ModeChatReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.session, tt.profile, tt.surface, today)
			if got != tt.want {
				t.Fatalf("ResolveMode() = %q, want %q", got, tt.want)
			}
			// Pure function: the same inputs must resolve identically.
			if again := ResolveMode(tt.session, tt.profile, tt.surface, today); again != got {
				t.Fatalf("ResolveMode() second call = %q, want %q", again, got)
			}
		})
	}
}

func TestQuotaAllows(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.Profile
		want    bool
	}{
		{
			name:    "fresh profile",
			profile: domain.Profile{},
			want:    true,
		},
		{
			name:    "one question asked today",
			profile: domain.Profile{DailyChatCount: 1, LastChatDate: today},
			want:    true,
		},
		{
			name:    "limit reached today",
			profile: domain.Profile{DailyChatCount: 2, LastChatDate: today},
			want:    false,
		},
		{
			name:    "day rollover resets eligibility even with a large counter",
			profile: domain.Profile{DailyChatCount: 5, LastChatDate: yesterday},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotaAllows(tt.profile, today); got != tt.want {
				t.Fatalf("QuotaAllows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsumeSetsCounterToOne(t *testing.T) {
	profile := domain.Profile{Approved: true, CanChat: true}

	Consume(&profile, today)
	if profile.DailyChatCount != 1 {
		t.Fatalf("DailyChatCount = %d, want 1", profile.DailyChatCount)
	}
	if profile.LastChatDate != today {
		t.Fatalf("LastChatDate = %q, want %q", profile.LastChatDate, today)
	}

	// A second exchange on the same day writes 1 again, not 2. The stored
	// counter can therefore never block the quota through this path alone.
	Consume(&profile, today)
	if profile.DailyChatCount != 1 {
		t.Fatalf("DailyChatCount after second Consume = %d, want 1", profile.DailyChatCount)
	}
	if !QuotaAllows(profile, today) {
		t.Fatalf("QuotaAllows() = false after two consumed exchanges, want true")
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(domain.Profile{}, today); got != 2 {
		t.Fatalf("Remaining(fresh) = %d, want 2", got)
	}
	if got := Remaining(domain.Profile{DailyChatCount: 1, LastChatDate: today}, today); got != 1 {
		t.Fatalf("Remaining(one used) = %d, want 1", got)
	}
	if got := Remaining(domain.Profile{DailyChatCount: 7, LastChatDate: today}, today); got != 0 {
		t.Fatalf("Remaining(over limit) = %d, want 0", got)
	}
	if got := Remaining(domain.Profile{DailyChatCount: 7, LastChatDate: yesterday}, today); got != 2 {
		t.Fatalf("Remaining(stale date) = %d, want 2", got)
	}
}
