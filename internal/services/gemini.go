package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/alexzlotnikov/pitchdeeper/internal/config"
)

// geminiService is the alternate relay adapter for the Gemini API.
// Selected with COMPLETION_PROVIDER=gemini.
type geminiService struct {
	cfg config.CompletionConfig
}

func NewGeminiService(cfg config.CompletionConfig) CompletionService {
	return &geminiService{cfg: cfg}
}

func (g *geminiService) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	temperature := g.cfg.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.cfg.MaxTokens),
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
