package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ghstats/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GHSTATS_API_KEY", "GEMINI_API_KEY", "GHSTATS_AI_PROVIDER", "GHSTATS_AI_MODEL",
		"GHSTATS_GITHUB_TOKEN", "GITHUB_TOKEN", "GHSTATS_ADDR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, 20, cfg.GitHub.RepoLimit)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Empty(t, cfg.AI.Model)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
github:
  token: file-token
  repo_limit: 50
  timeout: 5s
ai:
  provider: openai
  model: gpt-4o
  base_url: http://localhost:11434/v1
server:
  addr: ":9000"
`), 0o644))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GHSTATS_ADDR", ":9100")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.GitHub.Token)
	assert.Equal(t, 50, cfg.GitHub.RepoLimit)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL, "unset keys keep defaults")
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, "env-key", cfg.AI.APIKey)
	assert.Equal(t, ":9100", cfg.Server.Addr)
}

func TestLoadConfig_PrefersProjectKey(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("GHSTATS_API_KEY", "project")
	t.Setenv("GEMINI_API_KEY", "generic")
	t.Setenv("GITHUB_TOKEN", "gh")

	cfg, err := LoadConfig("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.AI.APIKey)
	assert.Equal(t, "gh", cfg.GitHub.Token)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_ProviderPicksItsOwnDefaultModel(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("GHSTATS_AI_PROVIDER", "openai")
	t.Setenv("GHSTATS_API_KEY", "sk-test")

	cfg, err := LoadConfig("missing.yaml")
	require.NoError(t, err)

	analyzer, err := knowledge.NewAnalyzer(context.Background(), knowledge.AnalyzerOptions{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	require.NoError(t, err)
	openai, ok := analyzer.(*knowledge.OpenAIAnalyzer)
	require.True(t, ok)
	assert.Equal(t, knowledge.DefaultOpenAIModel, openai.Model())
}
