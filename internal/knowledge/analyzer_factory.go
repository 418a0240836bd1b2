package knowledge

import (
	"context"
	"fmt"
	"strings"
)

type AnalyzerOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewAnalyzer(ctx context.Context, opts AnalyzerOptions) (Analyzer, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	switch provider {
	case "gemini":
		return NewGeminiAnalyzer(ctx, opts.APIKey, opts.Model)
	case "openai":
		return NewOpenAIAnalyzer(opts.APIKey, opts.Model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported analyzer provider: %s", opts.Provider)
	}
}
