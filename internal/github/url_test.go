package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUsername(t *testing.T) {
	tests := map[string]string{
		"https://github.com/octocat":              "octocat",
		"github.com/octocat/hello-world":          "octocat",
		"  https://github.com/torvalds?tab=repos": "torvalds",
		"octocat":                                 "octocat",
		"  spaced  ":                              "spaced",
	}
	for in, want := range tests {
		assert.Equal(t, want, ExtractUsername(in), in)
	}
}

func TestParseRepoURL(t *testing.T) {
	owner, repo, err := ParseRepoURL("https://github.com/octocat/Hello-World")
	require.NoError(t, err)
	assert.Equal(t, "octocat", owner)
	assert.Equal(t, "Hello-World", repo)

	owner, repo, err = ParseRepoURL("git@github.com/golang/go.git")
	require.NoError(t, err)
	assert.Equal(t, "golang", owner)
	assert.Equal(t, "go", repo)

	_, repo, err = ParseRepoURL("https://github.com/spf13/cobra#readme")
	require.NoError(t, err)
	assert.Equal(t, "cobra", repo)
}

func TestParseRepoURL_Invalid(t *testing.T) {
	for _, in := range []string{"", "octocat", "https://github.com/octocat", "https://gitlab.com/a/b"} {
		_, _, err := ParseRepoURL(in)
		assert.ErrorIs(t, err, ErrInvalidURL, in)
	}
}
