package domain

import "context"

// AccountRepository defines persistence for authentication credentials.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// ProfileRepository defines access methods for profiles.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	SetApproval(ctx context.Context, id string, approved, canChat bool) (*Profile, error)
	RecordChat(ctx context.Context, id string, day string) error
}

// TranscriptRepository handles persistence for fetched transcripts.
type TranscriptRepository interface {
	Save(ctx context.Context, tr *Transcript) error
	List(ctx context.Context) ([]Transcript, error)
	ListWithText(ctx context.Context) ([]Transcript, error)
	GetText(ctx context.Context, videoID string) (string, error)
}

// UsageRepository records usage events and aggregates them for the stats
// endpoint. Writes are best-effort; callers log and continue on error.
type UsageRepository interface {
	Insert(ctx context.Context, event *UsageEvent) error
	Summary(ctx context.Context) ([]UsageSummaryRow, error)
}
