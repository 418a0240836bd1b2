package knowledge

import (
	"fmt"
	"strings"
)

func cleanMarkdownOutput(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimPrefix(text, "```markdown")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func analysisError(err error) error {
	return fmt.Errorf("failed to generate AI analysis: %w", err)
}
