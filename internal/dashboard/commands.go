package dashboard

import (
	"context"
	"time"

	"ghstats/internal/generator"

	tea "github.com/charmbracelet/bubbletea"
)

// requestTimeout bounds a single dashboard action, including AI analysis.
const requestTimeout = 2 * time.Minute

func cmdRepoStats(svc Service, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		repo, err := svc.RepoStats(ctx, input)
		return repoStatsMsg{repo: repo, err: err}
	}
}

func cmdAnalyzeProfile(svc Service, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		report, err := svc.AnalyzeProfile(ctx, input)
		return profileMsg{report: report, err: err}
	}
}

func cmdReadme(svc Service, name string) tea.Cmd {
	return func() tea.Msg {
		md, err := svc.Readme(generator.ReadmeOptions{Name: name})
		return readmeMsg{markdown: md, err: err}
	}
}
