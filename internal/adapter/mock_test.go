package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockAdapterComplete(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name       string
		input      string
		wantPrefix string
	}{
		{"rewrites text", "write a poem", "You are an expert assistant. write a poem"},
		{"trims whitespace", "  write a poem  ", "You are an expert assistant. write a poem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Complete(context.Background(), "system prompt", tt.input, 100)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("got %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestMockAdapterEmptyText(t *testing.T) {
	m := &MockAdapter{}
	_, err := m.Complete(context.Background(), "system prompt", "   ", 100)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestMockAdapterExplainReturnsJSONArray(t *testing.T) {
	m := &MockAdapter{}
	got, err := m.Complete(context.Background(), "Return a JSON array of improvement objects.", "Original: \"a\"", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []map[string]string
	if err := json.Unmarshal([]byte(got), &items); err != nil {
		t.Fatalf("mock explain output is not a JSON array: %v", err)
	}
	if len(items) == 0 {
		t.Error("expected at least one item")
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, "prompt", "hello", 100)
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
	if m.Name() != "Mock" {
		t.Errorf("got %q, want %q", m.Name(), "Mock")
	}
}
