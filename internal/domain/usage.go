package domain

import "time"

// Usage event kinds.
const (
	UsageKindSignup         = "SIGNUP"
	UsageKindTranscriptSave = "TRANSCRIPT_SAVE"
	UsageKindChatAsk        = "CHAT_ASK"
)

// UsageEvent is one recorded interaction, used only for the stats summary.
type UsageEvent struct {
	UserID     string
	VideoID    string // empty for events without a video
	Kind       string
	Success    bool
	Properties map[string]any
	CreatedAt  time.Time
}

// UsageSummaryRow aggregates events of one kind over the last 24 hours.
type UsageSummaryRow struct {
	Kind      string `json:"kind"`
	Total     int64  `json:"total"`
	Succeeded int64  `json:"succeeded"`
}
