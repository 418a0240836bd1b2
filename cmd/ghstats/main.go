package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ghstats/internal/config"
	"ghstats/internal/github"
	"ghstats/internal/knowledge"
	"ghstats/internal/logging"
	"ghstats/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ghstats",
	Short: "GitHub repository stats, AI profile analysis and README templates",
	Long: `ghstats fetches live data from the GitHub API.

  stats      show statistics for a public repository
  analyze    generate an AI report on a user's profile, split into sections
  readme     produce a README template for a repository
  dashboard  open the interactive terminal dashboard
  serve      expose the same features as a JSON API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(serveCmd)
}

// newService wires the GitHub client and, when an API key is configured, the analyzer.
func newService(ctx context.Context, log *zap.Logger) (*pipeline.Service, error) {
	client := github.NewClient(github.ClientOptions{
		BaseURL:   cfg.GitHub.BaseURL,
		Token:     cfg.GitHub.Token,
		Timeout:   cfg.GitHub.Timeout,
		RepoLimit: cfg.GitHub.RepoLimit,
	})

	analyzer, err := knowledge.NewAnalyzer(ctx, knowledge.AnalyzerOptions{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	switch {
	case errors.Is(err, knowledge.ErrMissingAPIKey):
		log.Debug("no AI API key configured, profile analysis disabled")
		analyzer = nil
	case err != nil:
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	return pipeline.NewService(client, analyzer, log), nil
}
