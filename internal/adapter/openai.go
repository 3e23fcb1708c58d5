package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAdapter talks to the OpenAI chat completions API, or any endpoint
// compatible with it when BaseURL is set.
type OpenAIAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client

	client *openai.Client
}

// NewOpenAIAdapter builds the underlying go-openai client once.
func NewOpenAIAdapter(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIAdapter {
	a := &OpenAIAdapter{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  httpClient,
	}
	a.client = a.newClient()
	return a
}

func (o *OpenAIAdapter) newClient() *openai.Client {
	cfg := openai.DefaultConfig(o.APIKey)
	if o.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}
	if o.Client != nil {
		cfg.HTTPClient = o.Client
	}
	return openai.NewClientWithConfig(cfg)
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.Model)
}

func (o *OpenAIAdapter) Complete(ctx context.Context, systemPrompt, text string, maxTokens int) (string, error) {
	client := o.client
	if client == nil {
		client = o.newClient()
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.Model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	return content, nil
}

func (o *OpenAIAdapter) Available() bool {
	return o.APIKey != ""
}

// classifyOpenAIError turns go-openai's error types into StatusError so
// callers can match ErrAuth and ErrRateLimited without importing go-openai.
func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &StatusError{Provider: "openai", StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		msg := ""
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &StatusError{Provider: "openai", StatusCode: reqErr.HTTPStatusCode, Message: msg}
	}

	return fmt.Errorf("openai: request: %w", err)
}
