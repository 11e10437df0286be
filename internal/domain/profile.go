package domain

import "time"

// Profile carries the per-user approval flags and chat quota counters. A row
// is created at sign-up with both flags false; only an administrator (via
// cmd/approve) flips them. The service itself writes nothing but the quota
// fields.
type Profile struct {
	ID             string
	Email          string
	FullName       string
	Approved       bool
	CanChat        bool
	DailyChatCount int
	LastChatDate   string // YYYY-MM-DD, empty until the first counted question
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
