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

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func writeChatCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
}

func newOpenAITestAdapter(url string) *OpenAIAdapter {
	return NewOpenAIAdapter("sk-test", "gpt-4", url+"/v1", &http.Client{Timeout: 5 * time.Second})
}

func TestOpenAIAdapterComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path: got %s, want /v1/chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization: got %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "gpt-4" {
			t.Errorf("model: got %q, want gpt-4", req.Model)
		}
		if req.MaxTokens != 1000 {
			t.Errorf("max_tokens: got %d, want 1000", req.MaxTokens)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("messages: got %d, want 2", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || req.Messages[0].Content != "Improve prompts." {
			t.Errorf("system message: got %+v", req.Messages[0])
		}
		if req.Messages[1].Role != "user" || req.Messages[1].Content != "write a poem" {
			t.Errorf("user message: got %+v", req.Messages[1])
		}

		writeChatCompletion(w, "\n Write a sonnet about autumn. \n")
	}))
	defer srv.Close()

	got, err := newOpenAITestAdapter(srv.URL).Complete(context.Background(), "Improve prompts.", "write a poem", 1000)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Write a sonnet about autumn." {
		t.Errorf("got %q, want %q", got, "Write a sonnet about autumn.")
	}
}

func TestOpenAIAdapterStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{
			name:   "401 with api error body",
			status: http.StatusUnauthorized,
			body:   `{"error":{"message":"Incorrect API key provided: sk-test","type":"invalid_request_error","code":"invalid_api_key"}}`,
			target: ErrAuth,
		},
		{
			name:   "429 with api error body",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`,
			target: ErrRateLimited,
		},
		{
			name:   "429 with plain text body",
			status: http.StatusTooManyRequests,
			body:   "slow down",
			target: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newOpenAITestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
			if !errors.Is(err, tt.target) {
				t.Errorf("got %v, want %v", err, tt.target)
			}
			var se *StatusError
			if !errors.As(err, &se) || se.StatusCode != tt.status {
				t.Errorf("status error: got %+v", se)
			}
		})
	}
}

func TestOpenAIAdapterServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"The server had an error","type":"server_error"}}`))
	}))
	defer srv.Close()

	_, err := newOpenAITestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrRateLimited) {
		t.Errorf("500 should not classify as auth or rate limit: %v", err)
	}
}

func TestOpenAIAdapterEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	_, err := newOpenAITestAdapter(srv.URL).Complete(context.Background(), "p", "hello", 10)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestOpenAIAdapterTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newOpenAITestAdapter(url).Complete(context.Background(), "p", "hello", 10)
	if err == nil {
		t.Fatal("expected error for closed server, got nil")
	}
	if !strings.HasPrefix(err.Error(), "openai:") {
		t.Errorf("error should be prefixed, got %q", err.Error())
	}
}

func TestOpenAIAdapterNameAndAvailable(t *testing.T) {
	a := NewOpenAIAdapter("", "gpt-4", "", nil)
	if a.Available() {
		t.Error("adapter without key should be unavailable")
	}
	if a.Name() != "OpenAI (gpt-4)" {
		t.Errorf("name: got %q", a.Name())
	}
}
