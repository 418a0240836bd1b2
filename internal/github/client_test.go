package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{
  "login": "octocat",
  "name": "The Octocat",
  "bio": null,
  "followers": 42,
  "following": 7,
  "public_repos": 8,
  "created_at": "2011-01-25T18:44:36Z",
  "location": "San Francisco",
  "company": "@github"
}`

const reposJSON = `[
  {"name": "hello-world", "description": "My first repo", "stargazers_count": 10, "forks_count": 2, "language": "Go", "updated_at": "2024-05-01T00:00:00Z"},
  {"name": "spoon-knife", "description": null, "stargazers_count": 3, "forks_count": 9, "language": null, "updated_at": "2024-04-01T00:00:00Z"}
]`

const repoJSON = `{
  "name": "hello-world",
  "full_name": "octocat/hello-world",
  "stargazers_count": 1500,
  "forks_count": 300,
  "watchers_count": 1500,
  "open_issues_count": 4,
  "size": 2048,
  "default_branch": "main",
  "created_at": "2011-01-26T19:01:12Z",
  "owner": {"login": "octocat"},
  "license": {"key": "mit", "name": "MIT License", "spdx_id": "MIT"}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{BaseURL: srv.URL, Token: "secret"})
}

func TestClient_FetchProfile(t *testing.T) {
	var sawToken, sawQuery string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			sawToken = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(userJSON))
		case "/users/octocat/repos":
			sawQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(reposJSON))
		default:
			http.NotFound(w, r)
		}
	})

	p, err := c.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", sawToken)
	assert.Equal(t, "per_page=20&sort=updated", sawQuery)
	assert.Equal(t, "The Octocat", p.User.DisplayName())
	assert.Equal(t, 2011, p.User.JoinedYear())
	assert.Empty(t, p.User.Bio)
	require.Len(t, p.Repos, 2)
	assert.Equal(t, "hello-world", p.Repos[0].Name)
	assert.Empty(t, p.Repos[1].Language)
}

func TestClient_FetchProfile_UserNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := c.FetchProfile(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "User not found")
}

func TestClient_GetRepo_NotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.GetRepo(context.Background(), "octocat", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrRepoNotFound)
	assert.EqualError(t, err, "repository not found")
}

func TestClient_GetRepo(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello-world", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(repoJSON))
	})

	repo, err := c.GetRepo(context.Background(), "octocat", "hello-world")
	require.NoError(t, err)
	assert.Equal(t, 1500, repo.StargazersCount)
	assert.Equal(t, "octocat", repo.Owner.Login)
	assert.Equal(t, "MIT License", repo.LicenseName())
	assert.InDelta(t, 2.0, repo.SizeMB(), 0.0001)
}

func TestClient_APIErrorCarriesMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	})

	_, err := c.GetRepo(context.Background(), "octocat", "hello-world")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "API rate limit exceeded", apiErr.Message)
	assert.Contains(t, err.Error(), "repository octocat/hello-world")
}

func TestClient_NoTokenSendsNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{BaseURL: srv.URL + "/", RepoLimit: 5})
	repos, err := c.ListRepos(context.Background(), "octocat", 0)
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestLicenseNameFallback(t *testing.T) {
	assert.Equal(t, "No license", Repository{}.LicenseName())
}
