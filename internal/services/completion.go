package services

import "context"

// CompletionService sends one prompt to a chat-completion API and returns
// the raw text reply. Implementations make exactly one attempt; there is
// no retry or backoff policy. The credential is passed per call because it
// is read from the environment at request time.
type CompletionService interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}
