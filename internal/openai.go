package internal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// CompletionRequest is a single chat completion call
type CompletionRequest struct {
	Model       string
	Prompt      PromptRequest
	Temperature float64
}

// CompletionClient sends a prompt to a hosted model and returns the generated text
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAIClient wraps the official OpenAI Go SDK. Any OpenAI-compatible
// endpoint works through the base URL.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client}
}

// Complete implements CompletionClient
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Prompt.System),
			openai.UserMessage(req.Prompt.Human),
		},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", fmt.Errorf("%s (status %d)", apiErr.Message, apiErr.StatusCode)
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from %s", req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

// lazyCompletionClient defers building the SDK client until the first call,
// so commands that never reach the model don't need an API key.
type lazyCompletionClient struct {
	apiKey     string
	baseURL    string
	client     CompletionClient
	clientOnce sync.Once
}

func (l *lazyCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := ValidateAPIKey(l.apiKey); err != nil {
		return "", err
	}
	l.clientOnce.Do(func() {
		l.client = NewOpenAIClient(l.apiKey, l.baseURL)
	})
	return l.client.Complete(ctx, req)
}
