package knowledge

import (
	"context"
	"errors"
	"strings"

	"ghstats/internal/github"
)

var (
	// ErrMissingAPIKey is returned when a provider is selected without credentials.
	ErrMissingAPIKey = errors.New("AI API key not configured")
	// ErrUnexpectedResponse means the provider answered without a text payload.
	ErrUnexpectedResponse = errors.New("unexpected response format from AI provider")
)

// Analyzer turns a GitHub profile into a natural-language report.
type Analyzer interface {
	Analyze(ctx context.Context, profile github.Profile) (Analysis, error)
}

// Analysis is a validated report produced by a text-generation provider.
// Text is never empty.
type Analysis struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// NewAnalysis validates and cleans a provider payload.
func NewAnalysis(provider, model, text, finishReason string) (Analysis, error) {
	text = cleanMarkdownOutput(text)
	if strings.TrimSpace(text) == "" {
		return Analysis{}, ErrUnexpectedResponse
	}
	return Analysis{
		Provider:     provider,
		Model:        model,
		Text:         text,
		FinishReason: finishReason,
	}, nil
}
