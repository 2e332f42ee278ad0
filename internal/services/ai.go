package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

var ErrAIServiceNotConfigured = errors.New("AI service is not configured")

const tutorSystemPrompt = "You are an academic tutor. Explain clearly."

// ChatMessage is a single entry in the tutor conversation log.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIService relays tutor conversations to a chat completion endpoint.
type AIService struct {
	client *openai.Client
	model  string
}

// NewAIService creates an AIService. baseURL may point at any
// OpenAI-compatible endpoint (e.g. OpenRouter).
func NewAIService(apiKey, baseURL, model string) *AIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Chat prepends the tutor system prompt, forwards the conversation, and
// returns the upstream response unchanged.
func (s *AIService) Chat(ctx context.Context, log []ChatMessage) (*openai.ChatCompletionResponse, error) {
	if s == nil || s.client == nil {
		return nil, ErrAIServiceNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(log)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: tutorSystemPrompt,
	})
	for _, m := range log {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	return &resp, nil
}
