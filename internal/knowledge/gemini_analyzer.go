package knowledge

import (
	"context"
	"fmt"
	"strings"

	"ghstats/internal/github"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiAnalyzer implements Analyzer using Gemini text generation.
type GeminiAnalyzer struct {
	client        *genai.Client
	model         string
	promptBuilder *PromptBuilder
}

func NewGeminiAnalyzer(ctx context.Context, apiKey string, modelName string) (*GeminiAnalyzer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAnalyzer{
		client:        client,
		model:         modelName,
		promptBuilder: &PromptBuilder{},
	}, nil
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, profile github.Profile) (Analysis, error) {
	prompt := g.promptBuilder.BuildProfilePrompt(profile)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generationConfig())
	if err != nil {
		return Analysis{}, analysisError(fmt.Errorf("gemini request failed: %w", err))
	}
	a, err := analysisFromGemini(g.model, resp)
	if err != nil {
		return Analysis{}, analysisError(err)
	}
	return a, nil
}

func generationConfig() *genai.GenerateContentConfig {
	block := genai.HarmBlockThresholdBlockMediumAndAbove
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](1),
		TopP:            genai.Ptr[float32](1),
		MaxOutputTokens: 2048,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: block},
			{Category: genai.HarmCategoryHateSpeech, Threshold: block},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: block},
			{Category: genai.HarmCategoryDangerousContent, Threshold: block},
		},
	}
}

// analysisFromGemini reads the text of the first candidate. Thought parts are skipped.
func analysisFromGemini(model string, resp *genai.GenerateContentResponse) (Analysis, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return Analysis{}, ErrUnexpectedResponse
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return Analysis{}, ErrUnexpectedResponse
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return NewAnalysis("gemini", model, sb.String(), string(cand.FinishReason))
}
