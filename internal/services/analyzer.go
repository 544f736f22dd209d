package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/alexzlotnikov/pitchdeeper/internal/models"
)

// AnalyzerService runs the synthesize-relay-extract pipeline for one
// uploaded deck and returns the analysis JSON ready to send to the client.
type AnalyzerService interface {
	AnalyzePitch(ctx context.Context, apiKey string, file *models.UploadedFile) (json.RawMessage, error)
}

type analyzerService struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(completion CompletionService) AnalyzerService {
	return &analyzerService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzePitch implements AnalyzerService.
func (a *analyzerService) AnalyzePitch(ctx context.Context, apiKey string, file *models.UploadedFile) (json.RawMessage, error) {
	prompt := a.promptBuilder.BuildPitchAnalysisPrompt(file)
	log.Printf("📝 Analysis prompt built: %d characters", len(prompt))

	reply, err := a.completion.Complete(ctx, apiKey, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}
	log.Printf("✅ Completion reply received: %d characters", len(reply))

	analysis, err := ExtractJSONObject(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	return analysis, nil
}
