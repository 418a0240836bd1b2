package github

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	userURLPattern = regexp.MustCompile(`github\.com/([^/?#]+)`)
	repoURLPattern = regexp.MustCompile(`github\.com/([^/?#]+)/([^/?#]+)`)
)

// ExtractUsername pulls the login out of a profile URL. Input without a
// github.com path is treated as a bare username.
func ExtractUsername(input string) string {
	input = strings.TrimSpace(input)
	if m := userURLPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}

// ParseRepoURL returns the owner and repository name from a GitHub URL.
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	owner = m[1]
	repo = strings.TrimSuffix(m[2], ".git")
	if repo == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return owner, repo, nil
}
