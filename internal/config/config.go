package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHub struct {
		BaseURL   string        `yaml:"base_url"`
		Token     string        `yaml:"token"`
		RepoLimit int           `yaml:"repo_limit"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"github"`
	AI struct {
		Provider string `yaml:"provider"` // gemini | openai
		Model    string `yaml:"model"` // empty picks the provider default
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"` // openai-compatible endpoint
	} `yaml:"ai"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.GitHub.BaseURL = "https://api.github.com"
	cfg.GitHub.RepoLimit = 20
	cfg.GitHub.Timeout = 30 * time.Second
	cfg.AI.Provider = "gemini"
	cfg.Server.Addr = "127.0.0.1:8080"
	return &cfg
}

// LoadConfig reads .env, then the YAML file at path, then environment overrides.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config over defaults
	cfg := Default()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if apiKey := firstEnv("GHSTATS_API_KEY", "GEMINI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("GHSTATS_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("GHSTATS_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if token := firstEnv("GHSTATS_GITHUB_TOKEN", "GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
	if addr := os.Getenv("GHSTATS_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
