package generator

import "regexp"

// Token is one run of a line, either plain or wrapped in emphasis markers.
type Token struct {
	Text     string `json:"text"`
	Emphasis bool   `json:"emphasis"`
}

var emphasisSpan = regexp.MustCompile(`\*\*(.+?)\*\*`)

// SplitEmphasis breaks a line into plain and emphasized tokens. Paired "**"
// markers are dropped; unmatched markers are left in the text.
func SplitEmphasis(line string) []Token {
	var tokens []Token
	last := 0
	for _, loc := range emphasisSpan.FindAllStringSubmatchIndex(line, -1) {
		if loc[0] > last {
			tokens = append(tokens, Token{Text: line[last:loc[0]]})
		}
		tokens = append(tokens, Token{Text: line[loc[2]:loc[3]], Emphasis: true})
		last = loc[1]
	}
	if last < len(line) {
		tokens = append(tokens, Token{Text: line[last:]})
	}
	return tokens
}
