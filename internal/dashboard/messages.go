package dashboard

import (
	"ghstats/internal/github"
	"ghstats/internal/pipeline"
)

type repoStatsMsg struct {
	repo *github.Repository
	err  error
}

type profileMsg struct {
	report *pipeline.ProfileReport
	err    error
}

type readmeMsg struct {
	markdown string
	err      error
}
