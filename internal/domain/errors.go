package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnapproved      = errors.New("awaiting approval")
	ErrChatDisabled    = errors.New("chat disabled")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrUnavailable     = errors.New("transcript unavailable")
	ErrProviderFailure = errors.New("provider failure")
)
