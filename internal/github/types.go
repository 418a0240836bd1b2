package github

import (
	"time"
)

// User is the subset of the GitHub user resource shown by ghstats.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	Company     string    `json:"company"`
}

// DisplayName prefers the profile name and falls back to the login.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// JoinedYear is the year the account was created, or 0 if unknown.
func (u User) JoinedYear() int {
	if u.CreatedAt.IsZero() {
		return 0
	}
	return u.CreatedAt.Year()
}

type Owner struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// Repository mirrors the fields of the GitHub repository resource used by the stats view.
type Repository struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Size            int       `json:"size"` // KB
	DefaultBranch   string    `json:"default_branch"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Owner           Owner     `json:"owner"`
	License         *License  `json:"license"`
}

// SizeMB converts the KB size reported by GitHub to megabytes.
func (r Repository) SizeMB() float64 {
	return float64(r.Size) / 1024
}

// LicenseName returns the license display name or "No license".
func (r Repository) LicenseName() string {
	if r.License == nil || r.License.Name == "" {
		return "No license"
	}
	return r.License.Name
}

// Profile bundles a user with their most recently updated repositories.
type Profile struct {
	User  User         `json:"user"`
	Repos []Repository `json:"repos"`
}
