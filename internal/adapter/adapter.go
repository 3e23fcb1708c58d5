package adapter

import "context"

// CompletionClient defines the contract for upstream chat-completion providers.
// Complete sends one system instruction and one user message and returns the
// assistant text, trimmed.
type CompletionClient interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, text string, maxTokens int) (string, error)
	Available() bool
}
