package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"golang.org/x/text/language"

	"server/internal/domain"
	"server/internal/middleware"
)

// Fixed clock for quota tests.
var testNow = func() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

const testToday = "2024-01-01"

type fakeAccounts struct {
	accounts  map[string]*domain.Account // keyed by email
	createErr error
}

func (f *fakeAccounts) Create(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.accounts[email]; ok {
		return nil, domain.ErrEmailTaken
	}
	a := &domain.Account{ID: "acct-" + email, Email: email, PasswordHash: passwordHash}
	if f.accounts == nil {
		f.accounts = map[string]*domain.Account{}
	}
	f.accounts[email] = a
	return a, nil
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if a, ok := f.accounts[email]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

type fakeProfiles struct {
	profiles    map[string]*domain.Profile
	inserted    []*domain.Profile
	recordCalls []string // "id/day" per RecordChat call
}

func (f *fakeProfiles) Insert(ctx context.Context, profile *domain.Profile) error {
	if f.profiles == nil {
		f.profiles = map[string]*domain.Profile{}
	}
	f.profiles[profile.ID] = profile
	f.inserted = append(f.inserted, profile)
	return nil
}

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfiles) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfiles) SetApproval(ctx context.Context, id string, approved, canChat bool) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Approved = approved
	p.CanChat = canChat
	copied := *p
	return &copied, nil
}

func (f *fakeProfiles) RecordChat(ctx context.Context, id string, day string) error {
	f.recordCalls = append(f.recordCalls, id+"/"+day)
	if p, ok := f.profiles[id]; ok {
		p.DailyChatCount = 1
		p.LastChatDate = day
	}
	return nil
}

type fakeTranscripts struct {
	texts map[string]string
	saved []*domain.Transcript
}

func (f *fakeTranscripts) Save(ctx context.Context, tr *domain.Transcript) error {
	f.saved = append(f.saved, tr)
	if f.texts == nil {
		f.texts = map[string]string{}
	}
	f.texts[tr.VideoID] = tr.Text
	return nil
}

func (f *fakeTranscripts) List(ctx context.Context) ([]domain.Transcript, error) {
	var items []domain.Transcript
	for vid := range f.texts {
		items = append(items, domain.Transcript{VideoID: vid, Title: "Video " + vid})
	}
	return items, nil
}

func (f *fakeTranscripts) ListWithText(ctx context.Context) ([]domain.Transcript, error) {
	var items []domain.Transcript
	for vid, text := range f.texts {
		items = append(items, domain.Transcript{VideoID: vid, Title: "Video " + vid, Text: text})
	}
	return items, nil
}

func (f *fakeTranscripts) GetText(ctx context.Context, videoID string) (string, error) {
	if text, ok := f.texts[videoID]; ok {
		return text, nil
	}
	return "", domain.ErrNotFound
}

type fakeUsage struct {
	events []domain.UsageEvent
}

func (f *fakeUsage) Insert(ctx context.Context, event *domain.UsageEvent) error {
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeUsage) Summary(ctx context.Context) ([]domain.UsageSummaryRow, error) {
	return nil, nil
}

type fakeFetcher struct {
	segments map[string][]domain.Segment
	err      error
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string, prefs []language.Tag) ([]domain.Segment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if segs, ok := f.segments[videoID]; ok {
		return segs, nil
	}
	return nil, domain.ErrUnavailable
}

type fakeAnswerer struct {
	answer string
	err    error
	calls  []string // user prompts
}

func (f *fakeAnswerer) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls = append(f.calls, userPrompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func authedRequest(method, target, body string, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if userID != "" {
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
	}
	return req
}
