// Package answer provides chat-completion clients used to answer questions
// against stored transcript text. Provider errors are surfaced to the
// caller; there is no canned fallback answer.
package answer

import "context"

// Provider completes a single question given a system and a user prompt.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
