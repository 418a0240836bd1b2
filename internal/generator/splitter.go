package generator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Section is a titled run of body lines taken from generated report text.
type Section struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// OverviewTitle names the implicit section that collects lines seen before any heading.
const OverviewTitle = "Overview"

// maxHeadingLen is the exclusive rune limit for bare numbered and keyword headings.
const maxHeadingLen = 100

var (
	emphasizedLine   = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	emphasizedNumber = regexp.MustCompile(`^\*\*\d+\.\s*(.+)\*\*$`)
	numberedLine     = regexp.MustCompile(`^\d+\.`)
	leadingNumber    = regexp.MustCompile(`^\d+\.\s*`)
)

var headingKeywords = []string{
	"summary",
	"assessment",
	"analysis",
	"expertise",
	"involvement",
	"recommendations",
	"growth",
}

// headingRule reports whether a trimmed line opens a section and, if so, its raw title.
type headingRule func(line string) (string, bool)

// headingRules are evaluated in order; the first match wins. Reordering them
// changes how ambiguous lines are classified.
var headingRules = []headingRule{
	func(line string) (string, bool) {
		if m := emphasizedLine.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		return "", false
	},
	func(line string) (string, bool) {
		if m := emphasizedNumber.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		return "", false
	},
	func(line string) (string, bool) {
		if numberedLine.MatchString(line) && utf8.RuneCountInString(line) < maxHeadingLen {
			return leadingNumber.ReplaceAllString(line, ""), true
		}
		return "", false
	},
	func(line string) (string, bool) {
		if utf8.RuneCountInString(line) >= maxHeadingLen {
			return "", false
		}
		lower := strings.ToLower(line)
		for _, kw := range headingKeywords {
			if strings.Contains(lower, kw) {
				return line, true
			}
		}
		return "", false
	},
}

func detectHeading(line string) (string, bool) {
	for _, rule := range headingRules {
		if title, ok := rule(line); ok {
			return normalizeTitle(title), true
		}
	}
	return "", false
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = leadingNumber.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	title = strings.TrimSuffix(title, ":")
	return strings.TrimSpace(title)
}

// Classify partitions generated text into ordered sections, inferring headings
// from formatting cues. Blank lines are ignored and body lines are kept as-is.
// Sections without body lines are dropped, so the result may be empty; callers
// should then show the original text as a single block.
func Classify(text string) []Section {
	var sections []Section

	var (
		open    bool
		title   string
		content strings.Builder
	)

	closeSection := func() {
		if !open {
			return
		}
		sections = append(sections, Section{
			Title:    title,
			Content:  content.String(),
			Category: CategoryFor(title),
		})
		content.Reset()
		open = false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if heading, ok := detectHeading(trimmed); ok {
			closeSection()
			title = heading
			open = true
			continue
		}

		if !open {
			title = OverviewTitle
			open = true
		}
		if content.Len() > 0 {
			content.WriteByte('\n')
		}
		content.WriteString(line)
	}
	closeSection()

	out := sections[:0]
	for _, s := range sections {
		if strings.TrimSpace(s.Content) != "" {
			out = append(out, s)
		}
	}
	return out
}
