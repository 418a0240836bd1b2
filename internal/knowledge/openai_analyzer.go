package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ghstats/internal/github"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIAnalyzer implements Analyzer against any OpenAI-compatible chat completions endpoint.
type OpenAIAnalyzer struct {
	client        *http.Client
	apiKey        string
	model         string
	endpoint      string
	promptBuilder *PromptBuilder
}

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message      openAIChatMessage `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
}

func NewOpenAIAnalyzer(apiKey, model, baseURL string) *OpenAIAnalyzer {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	} else {
		endpoint = strings.TrimRight(endpoint, "/")
		if !strings.HasSuffix(endpoint, "/chat/completions") {
			if strings.HasSuffix(endpoint, "/v1") {
				endpoint += "/chat/completions"
			} else {
				endpoint += "/v1/chat/completions"
			}
		}
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIAnalyzer{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		apiKey:        apiKey,
		model:         model,
		endpoint:      endpoint,
		promptBuilder: &PromptBuilder{},
	}
}

// Model is the chat model requests are sent to.
func (s *OpenAIAnalyzer) Model() string {
	return s.model
}

func (s *OpenAIAnalyzer) Analyze(ctx context.Context, profile github.Profile) (Analysis, error) {
	prompt := s.promptBuilder.BuildProfilePrompt(profile)
	a, err := s.generate(ctx, prompt)
	if err != nil {
		return Analysis{}, analysisError(err)
	}
	return a, nil
}

func (s *OpenAIAnalyzer) generate(ctx context.Context, prompt string) (Analysis, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return Analysis{}, ErrMissingAPIKey
	}

	reqBody := openAIChatRequest{
		Model: s.model,
		Messages: []openAIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2048,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return Analysis{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Analysis{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Analysis{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Analysis{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Analysis{}, fmt.Errorf("openai chat request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return Analysis{}, ErrUnexpectedResponse
	}
	choice := parsed.Choices[0]
	return NewAnalysis("openai", s.model, choice.Message.Content, choice.FinishReason)
}
