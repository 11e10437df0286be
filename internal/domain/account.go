package domain

import "time"

// Account is the credential record backing authentication. It is kept
// separate from Profile so approval state can be managed without touching
// password material.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the ephemeral view of an authenticated caller for one request,
// derived from a verified token. It references a Profile by ID only.
type Session struct {
	UserID        string
	Authenticated bool
}
