package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/alexzlotnikov/pitchdeeper/internal/config"
)

// groqService talks to Groq's OpenAI-compatible chat completion endpoint.
type groqService struct {
	cfg config.CompletionConfig
}

func NewGroqService(cfg config.CompletionConfig) CompletionService {
	return &groqService{cfg: cfg}
}

func (g *groqService) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = g.cfg.BaseURL
	client := openai.NewClientWithConfig(clientCfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
