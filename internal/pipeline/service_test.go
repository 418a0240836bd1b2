package pipeline

import (
	"context"
	"errors"
	"testing"

	"ghstats/internal/generator"
	"ghstats/internal/github"
	"ghstats/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeSource struct {
	repo     *github.Repository
	profile  *github.Profile
	err      error
	gotOwner string
	gotRepo  string
	gotLogin string
}

func (f *fakeSource) GetRepo(_ context.Context, owner, repo string) (*github.Repository, error) {
	f.gotOwner, f.gotRepo = owner, repo
	return f.repo, f.err
}

func (f *fakeSource) FetchProfile(_ context.Context, login string) (*github.Profile, error) {
	f.gotLogin = login
	return f.profile, f.err
}

type fakeAnalyzer struct {
	text string
	err  error
}

func (f fakeAnalyzer) Analyze(_ context.Context, p github.Profile) (knowledge.Analysis, error) {
	if f.err != nil {
		return knowledge.Analysis{}, f.err
	}
	return knowledge.NewAnalysis("fake", "fake-1", f.text, "stop")
}

func testProfile() *github.Profile {
	return &github.Profile{
		User:  github.User{Login: "octocat", Name: "The Octocat"},
		Repos: []github.Repository{{Name: "hello-world"}},
	}
}

func TestService_AnalyzeProfile(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := &fakeSource{profile: testProfile()}
	svc := NewService(src, fakeAnalyzer{text: "**Summary**\nSolid engineer.\n**Areas of Expertise**\nGo"}, zap.New(core))

	report, err := svc.AnalyzeProfile(context.Background(), " https://github.com/octocat ")
	require.NoError(t, err)

	assert.Equal(t, "octocat", src.gotLogin)
	assert.Equal(t, "The Octocat", report.Profile.User.Name)
	require.NotNil(t, report.Analysis)
	assert.Equal(t, "fake", report.Analysis.Provider)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, "Summary", report.Sections[0].Title)
	assert.Equal(t, generator.CategoryExpertise, report.Sections[1].Category)

	entries := logs.FilterMessage("profile analyzed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["sections"])
}

func TestService_AnalyzeProfile_EmptyInput(t *testing.T) {
	svc := NewService(&fakeSource{}, nil, nil)
	_, err := svc.AnalyzeProfile(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.EqualError(t, err, "please enter a GitHub profile URL or username")
}

func TestService_AnalyzeProfile_FetchError(t *testing.T) {
	svc := NewService(&fakeSource{err: github.ErrNotFound}, fakeAnalyzer{text: "x"}, nil)
	report, err := svc.AnalyzeProfile(context.Background(), "ghost")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, github.ErrNotFound)
}

func TestService_AnalyzeProfile_NoAnalyzerReturnsProfile(t *testing.T) {
	svc := NewService(&fakeSource{profile: testProfile()}, nil, nil)
	assert.False(t, svc.HasAnalyzer())

	report, err := svc.AnalyzeProfile(context.Background(), "octocat")
	assert.ErrorIs(t, err, ErrAnalyzerUnavailable)
	require.NotNil(t, report)
	assert.Equal(t, "octocat", report.Profile.User.Login)
	assert.Nil(t, report.Analysis)
	assert.Empty(t, report.Sections)
}

func TestService_AnalyzeProfile_AnalyzerError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewService(&fakeSource{profile: testProfile()}, fakeAnalyzer{err: boom}, nil)

	report, err := svc.AnalyzeProfile(context.Background(), "octocat")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "analyze octocat")
	require.NotNil(t, report)
	assert.Nil(t, report.Analysis)
}

func TestService_RepoStats(t *testing.T) {
	src := &fakeSource{repo: &github.Repository{Name: "cobra", StargazersCount: 40000}}
	svc := NewService(src, nil, nil)

	repo, err := svc.RepoStats(context.Background(), "https://github.com/spf13/cobra")
	require.NoError(t, err)
	assert.Equal(t, "spf13", src.gotOwner)
	assert.Equal(t, "cobra", src.gotRepo)
	assert.Equal(t, 40000, repo.StargazersCount)
}

func TestService_RepoStats_InvalidURL(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, nil, nil)

	_, err := svc.RepoStats(context.Background(), "not a url")
	assert.ErrorIs(t, err, github.ErrInvalidURL)
	assert.Empty(t, src.gotOwner, "source must not be called")
}

func TestService_Readme(t *testing.T) {
	svc := NewService(&fakeSource{}, nil, nil)
	md, err := svc.Readme(generator.ReadmeOptions{Name: "demo"})
	require.NoError(t, err)
	assert.Contains(t, md, "# demo")
}
