package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const claudeDefaultBaseURL = "https://api.anthropic.com"

// ClaudeAdapter connects to the Anthropic Messages API.
type ClaudeAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessagesRequest struct {
	Model     string          `json:"model"`
	System    string          `json:"system"`
	Messages  []claudeMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeMessagesResponse struct {
	Content []claudeContentBlock `json:"content"`
}

type claudeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ClaudeAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", c.Model)
}

func (c *ClaudeAdapter) Complete(ctx context.Context, systemPrompt, text string, maxTokens int) (string, error) {
	reqBody := claudeMessagesRequest{
		Model:  c.Model,
		System: systemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: text},
		},
		MaxTokens: maxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("claude: marshal request: %w", err)
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = claudeDefaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/v1/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("claude: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp claudeErrorResponse
		var msg string
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			msg = fmt.Sprintf("unreadable error body: %v", err)
		} else {
			msg = errResp.Error.Message
		}
		return "", &StatusError{Provider: "claude", StatusCode: resp.StatusCode, Message: msg}
	}

	var msgResp claudeMessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("claude: decode response: %w", err)
	}

	var result strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}

	out := strings.TrimSpace(result.String())
	if out == "" {
		return "", fmt.Errorf("claude: %w", ErrEmptyResponse)
	}
	return out, nil
}

func (c *ClaudeAdapter) Available() bool {
	return c.APIKey != ""
}
