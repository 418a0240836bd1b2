package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ghstats/internal/generator"
	"ghstats/internal/github"
	"ghstats/internal/knowledge"
	"ghstats/internal/logging"

	"go.uber.org/zap"
)

var (
	ErrEmptyInput          = errors.New("please enter a GitHub profile URL or username")
	ErrAnalyzerUnavailable = errors.New("AI analysis is not configured")
)

// RepoSource is the subset of the GitHub client the service depends on.
type RepoSource interface {
	GetRepo(ctx context.Context, owner, repo string) (*github.Repository, error)
	FetchProfile(ctx context.Context, login string) (*github.Profile, error)
}

// ProfileReport is everything the profile views render.
// Analysis and Sections are empty when the analysis stage did not run.
type ProfileReport struct {
	Profile  github.Profile      `json:"profile"`
	Analysis *knowledge.Analysis `json:"analysis,omitempty"`
	Sections []generator.Section `json:"sections"`
}

type Service struct {
	source   RepoSource
	analyzer knowledge.Analyzer
	logger   *zap.Logger
}

// NewService wires the stages together. analyzer may be nil, in which case
// profile reports stop after the fetch stage.
func NewService(source RepoSource, analyzer knowledge.Analyzer, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		analyzer: analyzer,
		logger:   logging.OrNop(logger),
	}
}

// HasAnalyzer reports whether profile analysis is available.
func (s *Service) HasAnalyzer() bool {
	return s.analyzer != nil
}

// RepoStats resolves a repository URL and fetches its statistics.
func (s *Service) RepoStats(ctx context.Context, rawURL string) (*github.Repository, error) {
	owner, name, err := github.ParseRepoURL(rawURL)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	repo, err := s.source.GetRepo(ctx, owner, name)
	if err != nil {
		s.logger.Warn("repository fetch failed", zap.String("owner", owner), zap.String("repo", name), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("repository fetched",
		zap.String("owner", owner),
		zap.String("repo", name),
		zap.Duration("elapsed", time.Since(start)))
	return repo, nil
}

// AnalyzeProfile fetches a profile, asks the analyzer for a report and splits it
// into sections. When fetching succeeds but analysis fails, the partial report is
// returned together with the error so callers can still show the profile.
func (s *Service) AnalyzeProfile(ctx context.Context, input string) (*ProfileReport, error) {
	login, err := s.resolveStage(input)
	if err != nil {
		return nil, err
	}

	profile, err := s.fetchStage(ctx, login)
	if err != nil {
		return nil, err
	}
	report := &ProfileReport{Profile: *profile}

	analysis, err := s.analyzeStage(ctx, *profile)
	if err != nil {
		return report, err
	}
	report.Analysis = &analysis
	report.Sections = generator.Classify(analysis.Text)
	s.logger.Info("profile analyzed",
		zap.String("login", login),
		zap.String("provider", analysis.Provider),
		zap.Int("sections", len(report.Sections)))
	return report, nil
}

// Readme renders the README template.
func (s *Service) Readme(opts generator.ReadmeOptions) (string, error) {
	return generator.RenderReadme(opts)
}

func (s *Service) resolveStage(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}
	login := github.ExtractUsername(input)
	if login == "" {
		return "", ErrEmptyInput
	}
	return login, nil
}

func (s *Service) fetchStage(ctx context.Context, login string) (*github.Profile, error) {
	start := time.Now()
	profile, err := s.source.FetchProfile(ctx, login)
	if err != nil {
		s.logger.Warn("profile fetch failed", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("profile fetched",
		zap.String("login", login),
		zap.Int("repos", len(profile.Repos)),
		zap.Duration("elapsed", time.Since(start)))
	return profile, nil
}

func (s *Service) analyzeStage(ctx context.Context, profile github.Profile) (knowledge.Analysis, error) {
	if s.analyzer == nil {
		return knowledge.Analysis{}, ErrAnalyzerUnavailable
	}
	start := time.Now()
	analysis, err := s.analyzer.Analyze(ctx, profile)
	if err != nil {
		s.logger.Error("analysis failed", zap.String("login", profile.User.Login), zap.Error(err))
		return knowledge.Analysis{}, fmt.Errorf("analyze %s: %w", profile.User.Login, err)
	}
	s.logger.Debug("analysis generated",
		zap.String("model", analysis.Model),
		zap.Int("chars", len(analysis.Text)),
		zap.Duration("elapsed", time.Since(start)))
	return analysis, nil
}
