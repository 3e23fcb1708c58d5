package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newClaudeTestAdapter(url string) *ClaudeAdapter {
	return &ClaudeAdapter{
		BaseURL: url,
		APIKey:  "sk-test",
		Model:   "claude-sonnet-4-5-20250929",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestClaudeAdapterComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/messages" {
			t.Errorf("expected /v1/messages, got %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sk-test" {
			t.Errorf("x-api-key: got %q, want %q", got, "sk-test")
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("anthropic-version: got %q, want %q", got, "2023-06-01")
		}

		var req claudeMessagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.System != "Improve prompts." {
			t.Errorf("system: got %q, want %q", req.System, "Improve prompts.")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages: got %+v, want one user message", req.Messages)
		}
		if req.MaxTokens != 1000 {
			t.Errorf("max_tokens: got %d, want 1000", req.MaxTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(claudeMessagesResponse{
			Content: []claudeContentBlock{{Type: "text", Text: "  Write a sonnet about autumn.  "}},
		})
	}))
	defer srv.Close()

	got, err := newClaudeTestAdapter(srv.URL).Complete(context.Background(), "Improve prompts.", "write a poem", 1000)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Write a sonnet about autumn." {
		t.Errorf("got %q, want %q", got, "Write a sonnet about autumn.")
	}
}

func TestClaudeAdapterStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAuth},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": "some_error", "message": "upstream said no"},
				})
			}))
			defer srv.Close()

			_, err := newClaudeTestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
			if !errors.Is(err, tt.target) {
				t.Errorf("got %v, want %v", err, tt.target)
			}
			var se *StatusError
			if !errors.As(err, &se) || se.Message != "upstream said no" {
				t.Errorf("status error: got %+v", se)
			}
		})
	}
}

func TestClaudeAdapterServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClaudeTestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusBadGateway {
		t.Errorf("status: got %d, want %d", se.StatusCode, http.StatusBadGateway)
	}
}

func TestClaudeAdapterEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(claudeMessagesResponse{Content: []claudeContentBlock{}})
	}))
	defer srv.Close()

	_, err := newClaudeTestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestClaudeAdapterAvailable(t *testing.T) {
	if (&ClaudeAdapter{}).Available() {
		t.Error("adapter without key should be unavailable")
	}
	if !newClaudeTestAdapter("http://unused").Available() {
		t.Error("adapter with key should be available")
	}
}

func TestClaudeAdapterNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("<html>slow down</html>"))
	}))
	defer srv.Close()

	_, err := newClaudeTestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("got %v, want %v", err, ErrRateLimited)
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *StatusError", err)
	}
	if !strings.HasPrefix(se.Message, "unreadable error body:") {
		t.Errorf("message: got %q, want unreadable error body note", se.Message)
	}
}
