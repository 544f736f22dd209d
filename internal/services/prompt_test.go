package services

import (
	"strings"
	"testing"

	"github.com/alexzlotnikov/pitchdeeper/internal/models"
)

func TestBuildPitchAnalysisPromptDeterministic(t *testing.T) {
	pb := NewPromptBuilder()
	file := &models.UploadedFile{
		Name:      "deck.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 3145728,
	}

	first := pb.BuildPitchAnalysisPrompt(file)
	for i := 0; i < 5; i++ {
		if got := pb.BuildPitchAnalysisPrompt(file); got != first {
			t.Fatalf("prompt differs between calls for identical input (call %d)", i+1)
		}
	}
}

func TestBuildPitchAnalysisPromptContent(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildPitchAnalysisPrompt(&models.UploadedFile{
		Name:      "deck.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 3145728, // 3 MB
	})

	for _, want := range []string{
		"Name: deck.pdf",
		"Type: application/pdf",
		"Size: 3 MB",
		"2-5MB: 10-15 slides",
		"Under 2MB: 6-10 slides",
		"5-15MB: 15-20 slides",
		"15MB+: 20-25 slides",
		"EXACTLY 10 investor questions",
		`"investorQuestionsWithAnswers"`,
		`"slideOptimization"`,
		`"designFeedback"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFormatSizeMB(t *testing.T) {
	testCases := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"exact megabytes trim zeros", 3145728, "3"},
		{"two decimals kept", 3294199, "3.14"},
		{"sub-megabyte", 524288, "0.5"},
		{"fifty MiB boundary", 52428800, "50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatSizeMB(tc.bytes); got != tc.want {
				t.Errorf("formatSizeMB(%d) = %s, want %s", tc.bytes, got, tc.want)
			}
		})
	}
}
