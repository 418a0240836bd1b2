// Package dashboard is the interactive terminal front end: repository stats,
// profile analysis, README generation and usage notes, one tab each.
package dashboard

import (
	"context"
	"errors"
	"strings"

	"ghstats/internal/generator"
	"ghstats/internal/github"
	"ghstats/internal/pipeline"
	"ghstats/internal/render"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Service is what the dashboard needs from the pipeline.
type Service interface {
	RepoStats(ctx context.Context, rawURL string) (*github.Repository, error)
	AnalyzeProfile(ctx context.Context, input string) (*pipeline.ProfileReport, error)
	Readme(opts generator.ReadmeOptions) (string, error)
}

type tab int

const (
	tabStats tab = iota
	tabProfile
	tabReadme
	tabHelp
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabStats:
		return "REPO STATS"
	case tabProfile:
		return "PROFILE ANALYZER"
	case tabReadme:
		return "README GENERATOR"
	default:
		return "INSTRUCTIONS"
	}
}

func (t tab) placeholder() string {
	switch t {
	case tabStats:
		return "https://github.com/owner/repository"
	case tabProfile:
		return "GitHub profile URL or username (e.g., octocat)"
	case tabReadme:
		return "Enter repository name"
	default:
		return ""
	}
}

var errEmptyRepoURL = errors.New("please enter a GitHub repository URL")

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// Model is the Bubble Tea model of the dashboard.
type Model struct {
	svc      Service
	renderer *render.Renderer
	theme    render.Theme

	active  tab
	input   textinput.Model
	spinner spinner.Model
	view    viewport.Model

	loading bool
	err     error
	results map[tab]string

	width  int
	height int
}

func New(svc Service, theme render.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		svc:      svc,
		renderer: render.New(theme),
		theme:    theme,
		input:    ti,
		spinner:  sp,
		view:     viewport.New(80, 20),
		results:  map[tab]string{tabHelp: instructions},
	}
	m.switchTab(tabStats)
	return m
}

// Run starts the dashboard in the alternate screen and blocks until it exits.
func Run(svc Service, theme render.Theme) error {
	_, err := tea.NewProgram(New(svc, theme), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-headerHeight, 3)
		m.input.Width = max(msg.Width-6, 10)
		m.refreshView()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.switchTab((m.active + 1) % tabCount)
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.switchTab((m.active + tabCount - 1) % tabCount)
			return m, nil
		case key.Matches(msg, keys.Clear):
			m.input.Reset()
			m.err = nil
			return m, nil
		case key.Matches(msg, keys.Submit):
			return m.submit()
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case repoStatsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil && msg.repo != nil {
			m.setResult(tabStats, m.renderer.RepoCard(*msg.repo))
		}
		return m, nil

	case profileMsg:
		m.loading = false
		m.err = msg.err
		if msg.report != nil {
			m.setResult(tabProfile, m.profileView(msg.report))
		}
		return m, nil

	case readmeMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.setResult(tabReadme, m.readmeView(msg.markdown))
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.active != tabHelp {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.loading || m.active == tabHelp {
		return m, nil
	}
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		switch m.active {
		case tabStats:
			m.err = errEmptyRepoURL
		case tabProfile:
			m.err = pipeline.ErrEmptyInput
		case tabReadme:
			m.err = generator.ErrEmptyRepoName
		}
		return m, nil
	}

	m.err = nil
	m.loading = true
	var work tea.Cmd
	switch m.active {
	case tabStats:
		work = cmdRepoStats(m.svc, value)
	case tabProfile:
		work = cmdAnalyzeProfile(m.svc, value)
	case tabReadme:
		work = cmdReadme(m.svc, value)
	}
	return m, tea.Batch(m.spinner.Tick, work)
}

func (m *Model) switchTab(t tab) {
	m.active = t
	m.err = nil
	m.input.Reset()
	m.input.Placeholder = t.placeholder()
	if t == tabHelp {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
	m.refreshView()
}

func (m *Model) setResult(t tab, content string) {
	m.results[t] = content
	if t == m.active {
		m.refreshView()
	}
}

func (m *Model) refreshView() {
	m.view.SetContent(m.results[m.active])
	m.view.GotoTop()
}

func (m Model) profileView(report *pipeline.ProfileReport) string {
	parts := []string{m.renderer.ProfileCard(report.Profile.User)}
	if report.Analysis != nil {
		parts = append(parts, m.renderer.Report(report.Analysis.Text))
	}
	if top := m.renderer.TopRepos(report.Profile.Repos, render.DefaultTopRepos); top != "" {
		parts = append(parts, top)
	}
	return strings.Join(parts, "\n")
}

func (m Model) readmeView(md string) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	out, err := render.Markdown(md, width-4, "dark")
	if err != nil {
		return md
	}
	return out
}

const instructions = `REPOSITORY STATS
  • Enter any public GitHub repository URL
  • Press enter to fetch detailed statistics
  • View stars, forks, watchers, and other metrics
  • See repository information like language, size, and creation date

PROFILE ANALYZER
  • Enter a GitHub profile URL or a username
  • The profile and recent repositories are sent to the configured AI provider
  • The report is split into sections such as Skills, Activity and Growth

README GENERATOR
  • Enter your repository name
  • Press enter to create a README template
  • Use "ghstats readme --out README.md" to write it to a file

TIPS
  • Use the full GitHub URL format: https://github.com/owner/repository
  • Repositories must be public to fetch statistics
  • Set GITHUB_TOKEN to raise the GitHub API rate limit
  • Set GEMINI_API_KEY (or GHSTATS_API_KEY) to enable profile analysis
  • All data is fetched live from the GitHub API`
