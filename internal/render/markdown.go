package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown for the terminal, wrapping at width columns.
// style is a glamour standard style name ("dark", "light", "notty"); empty
// selects the style from the terminal background.
func Markdown(md string, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("render: create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return out, nil
}
