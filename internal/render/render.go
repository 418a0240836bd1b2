// Package render turns GitHub data and analysis reports into terminal text.
package render

import (
	"fmt"
	"strings"
	"time"

	"ghstats/internal/generator"
	"ghstats/internal/github"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTopRepos is how many repositories the profile view lists.
const DefaultTopRepos = 6

type Renderer struct {
	theme Theme
}

func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RepoCard renders the statistics and metadata of a single repository.
func (r *Renderer) RepoCard(repo github.Repository) string {
	t := r.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render(repo.Name))
	sb.WriteString("\n")
	sb.WriteString(t.Subtitle.Render(orDefault(repo.Description, "No description available")))
	sb.WriteString("\n\n")

	badges := []string{
		t.Badge.Render(fmt.Sprintf("★ %d stars", repo.StargazersCount)),
		t.Badge.Render(fmt.Sprintf("⑂ %d forks", repo.ForksCount)),
		t.Badge.Render(fmt.Sprintf("◉ %d watchers", repo.WatchersCount)),
	}
	sb.WriteString(strings.Join(badges, " "))
	sb.WriteString("\n\n")

	rows := [][2]string{
		{"Created", formatDate(repo.CreatedAt)},
		{"Language", orDefault(repo.Language, "Not specified")},
		{"Size", fmt.Sprintf("%.2f MB", repo.SizeMB())},
		{"Owner", repo.Owner.Login},
		{"Default Branch", repo.DefaultBranch},
		{"Open Issues", fmt.Sprintf("%d", repo.OpenIssuesCount)},
		{"License", repo.LicenseName()},
	}
	sb.WriteString(r.table(rows))
	if repo.HTMLURL != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Muted.Render(repo.HTMLURL))
	}
	return t.Card.Render(sb.String())
}

// ProfileCard renders a user's headline numbers and contact details.
func (r *Renderer) ProfileCard(u github.User) string {
	t := r.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render(u.DisplayName()))
	sb.WriteString("\n")
	sb.WriteString(t.Muted.Render("@" + u.Login))
	if u.Bio != "" {
		sb.WriteString("\n\n")
		sb.WriteString(u.Bio)
	}
	sb.WriteString("\n\n")

	joined := "-"
	if y := u.JoinedYear(); y > 0 {
		joined = fmt.Sprintf("%d", y)
	}
	stats := []string{
		r.stat(u.PublicRepos, "Repositories"),
		r.stat(u.Followers, "Followers"),
		r.stat(u.Following, "Following"),
		r.statText(joined, "Joined"),
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))

	var details []string
	if u.Location != "" {
		details = append(details, "📍 "+u.Location)
	}
	if u.Company != "" {
		details = append(details, "🏢 "+u.Company)
	}
	if u.Blog != "" {
		details = append(details, "🔗 "+u.Blog)
	}
	if len(details) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(t.Label.Render(strings.Join(details, "   ")))
	}
	return t.Card.Render(sb.String())
}

// TopRepos lists up to n repositories with stars, forks, language and update date.
// A non-positive n uses DefaultTopRepos.
func (r *Renderer) TopRepos(repos []github.Repository, n int) string {
	if len(repos) == 0 {
		return ""
	}
	if n <= 0 {
		n = DefaultTopRepos
	}
	if len(repos) > n {
		repos = repos[:n]
	}
	t := r.theme
	var sb strings.Builder
	sb.WriteString(t.Title.Render("⑂ Top Repositories"))
	for _, repo := range repos {
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "%s  %s\n",
			t.Value.Render(repo.Name),
			t.Muted.Render(fmt.Sprintf("★ %d  ⑂ %d", repo.StargazersCount, repo.ForksCount)))
		if repo.Description != "" {
			sb.WriteString(repo.Description)
			sb.WriteString("\n")
		}
		sb.WriteString(t.Label.Render(fmt.Sprintf("%s · Updated %s",
			orDefault(repo.Language, "No language"), formatDate(repo.UpdatedAt))))
	}
	return t.Card.Render(sb.String())
}

// Report renders generated analysis text section by section. Text with no
// recognizable sections is shown unchanged as a single block.
func (r *Renderer) Report(text string) string {
	t := r.theme
	var sb strings.Builder
	sb.WriteString(t.Title.Render("★ AI Analysis Report"))
	sb.WriteString("\n")

	sections := generator.Classify(text)
	if len(sections) == 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(text))
		return t.Card.Render(sb.String())
	}
	for _, s := range sections {
		sb.WriteString("\n")
		sb.WriteString(t.Subtitle.Render(s.Category.Icon() + " " + s.Title))
		sb.WriteString("\n")
		for _, line := range strings.Split(s.Content, "\n") {
			sb.WriteString(r.Inline(line))
			sb.WriteString("\n")
		}
	}
	return t.Card.Render(strings.TrimRight(sb.String(), "\n"))
}

// Inline renders emphasized spans of a single line in the emphasis style.
func (r *Renderer) Inline(line string) string {
	var sb strings.Builder
	for _, tok := range generator.SplitEmphasis(line) {
		if tok.Emphasis {
			sb.WriteString(r.theme.Emphasis.Render(tok.Text))
			continue
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Error renders a failure message for the user.
func (r *Renderer) Error(err error) string {
	if err == nil {
		return ""
	}
	return r.theme.Error.Render("✗ " + err.Error())
}

func (r *Renderer) table(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := r.theme.Label.Render(fmt.Sprintf("%-*s", width+1, row[0]+":"))
		lines = append(lines, label+" "+r.theme.Value.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) stat(n int, label string) string {
	return r.statText(fmt.Sprintf("%d", n), label)
}

func (r *Renderer) statText(value, label string) string {
	return lipgloss.NewStyle().Width(16).Align(lipgloss.Center).Render(
		r.theme.Value.Render(value) + "\n" + r.theme.Label.Render(label))
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Jan 2, 2006")
}
