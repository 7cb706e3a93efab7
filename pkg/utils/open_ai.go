package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openRouterBaseURL   = "https://openrouter.ai/api/v1"
	defaultChatModel    = "openai/gpt-4o-mini"
	completionTimeout   = 8 * time.Second
	completionMaxTokens = 600
)

// ChatTurn is one message of the bounded conversation window handed to a
// completion provider.
type ChatTurn struct {
	Role    string
	Content string
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt string, history []ChatTurn) (string, error)
}

// OpenRouterCompletionClient implements CompletionClientInterface against
// OpenRouter's OpenAI-compatible endpoint.
type OpenRouterCompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterCompletionClient(apiKey, model string) *OpenRouterCompletionClient {
	if model == "" {
		model = defaultChatModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = openRouterBaseURL

	return &OpenRouterCompletionClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenRouterCompletionClient) Complete(ctx context.Context, systemPrompt string, history []ChatTurn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		log.Printf("OpenRouter completion failed: %v", err)
		return "", ErrCompletionUnavailable
	}

	if len(resp.Choices) == 0 {
		log.Println("OpenRouter returned no choices")
		return "", ErrCompletionUnavailable
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// NewCompletionClient builds a completion client for the configured provider.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openrouter", "openai":
		return NewOpenRouterCompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
