package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns simulated completions with a configurable delay.
// Used for development and testing without a real upstream provider.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

// Complete answers with a JSON improvement list when the instruction asks for
// one, otherwise with a rewritten version of the user text.
func (m *MockAdapter) Complete(ctx context.Context, systemPrompt, text string, maxTokens int) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	if strings.Contains(systemPrompt, "JSON array") {
		items := []map[string]string{
			{"title": "Added context", "description": "The improved prompt defines a role and background."},
			{"title": "Specified output format", "description": "The improved prompt states the expected shape of the answer."},
		}
		out, err := json.Marshal(items)
		if err != nil {
			return "", fmt.Errorf("mock: marshal: %w", err)
		}
		return string(out), nil
	}

	improved := strings.TrimSpace(text)
	if improved == "" {
		return "", fmt.Errorf("mock: %w", ErrEmptyResponse)
	}
	return "You are an expert assistant. " + improved + "\n\nRespond in a clear, well-structured format.", nil
}

func (m *MockAdapter) Available() bool { return true }
