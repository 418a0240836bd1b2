package knowledge

import (
	"fmt"
	"strings"
	"time"

	"ghstats/internal/github"
)

// promptRepoLimit caps how many repositories are described to the model.
const promptRepoLimit = 10

// PromptBuilder constructs the profile analysis prompt.
type PromptBuilder struct{}

var reportSections = []string{
	"Developer Profile Summary",
	"Technical Skills Assessment (based on repository languages and projects)",
	"Activity and Engagement Analysis",
	"Project Quality and Impact Assessment",
	"Areas of Expertise",
	"Collaboration and Community Involvement",
	"Recommendations for Growth",
}

func (pb *PromptBuilder) BuildProfilePrompt(p github.Profile) string {
	u := p.User
	var sb strings.Builder
	sb.WriteString("Analyze this GitHub profile and provide comprehensive insights:\n\n")

	sb.WriteString("User Profile:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", u.DisplayName())
	fmt.Fprintf(&sb, "- Bio: %s\n", orDefault(u.Bio, "No bio provided"))
	fmt.Fprintf(&sb, "- Location: %s\n", orDefault(u.Location, "Not specified"))
	fmt.Fprintf(&sb, "- Company: %s\n", orDefault(u.Company, "Not specified"))
	fmt.Fprintf(&sb, "- Followers: %d\n", u.Followers)
	fmt.Fprintf(&sb, "- Following: %d\n", u.Following)
	fmt.Fprintf(&sb, "- Public Repositories: %d\n", u.PublicRepos)
	fmt.Fprintf(&sb, "- Account Created: %s\n", formatDate(u.CreatedAt))

	sb.WriteString("\nTop Repositories:\n")
	repos := p.Repos
	if len(repos) > promptRepoLimit {
		repos = repos[:promptRepoLimit]
	}
	for _, r := range repos {
		fmt.Fprintf(&sb, "\n- %s: %s\n", r.Name, orDefault(r.Description, "No description"))
		fmt.Fprintf(&sb, "  Language: %s\n", orDefault(r.Language, "Not specified"))
		fmt.Fprintf(&sb, "  Stars: %d\n", r.StargazersCount)
		fmt.Fprintf(&sb, "  Forks: %d\n", r.ForksCount)
		fmt.Fprintf(&sb, "  Last Updated: %s\n", formatDate(r.UpdatedAt))
	}

	sb.WriteString("\nPlease provide:\n")
	for i, s := range reportSections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	sb.WriteString("\nMake the analysis detailed, professional, and actionable.")
	return sb.String()
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
	return t.Format("2006-01-02")
}
