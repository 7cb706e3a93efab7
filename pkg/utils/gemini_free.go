package utils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's
// Gemini models. Free-tier alternative to the OpenRouter client.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, systemPrompt string, history []ChatTurn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(completionMaxTokens)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	session := m.StartChat()
	if len(history) > 1 {
		for _, turn := range history[:len(history)-1] {
			role := "user"
			if turn.Role == "assistant" {
				role = "model"
			}
			session.History = append(session.History, &genai.Content{
				Role:  role,
				Parts: []genai.Part{genai.Text(turn.Content)},
			})
		}
	}

	last := ""
	if len(history) > 0 {
		last = history[len(history)-1].Content
	}

	resp, err := session.SendMessage(ctx, genai.Text(last))
	if err != nil {
		log.Printf("Gemini completion failed: %v", err)
		return "", ErrCompletionUnavailable
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Println("Gemini returned no content")
		return "", ErrCompletionUnavailable
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// Close closes the Gemini client.
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
