package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "mixed",
			in:   "this is **bold** and plain",
			want: []Token{
				{Text: "this is "},
				{Text: "bold", Emphasis: true},
				{Text: " and plain"},
			},
		},
		{
			name: "plain only",
			in:   "nothing special",
			want: []Token{{Text: "nothing special"}},
		},
		{
			name: "adjacent spans",
			in:   "**a** **b**",
			want: []Token{
				{Text: "a", Emphasis: true},
				{Text: " "},
				{Text: "b", Emphasis: true},
			},
		},
		{
			name: "unmatched marker stays literal",
			in:   "**open but never closed",
			want: []Token{{Text: "**open but never closed"}},
		},
		{
			name: "label prefix",
			in:   "- **Languages:** Go, TypeScript",
			want: []Token{
				{Text: "- "},
				{Text: "Languages:", Emphasis: true},
				{Text: " Go, TypeScript"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEmphasis(tt.in))
		})
	}
}

func TestSplitEmphasis_Empty(t *testing.T) {
	assert.Empty(t, SplitEmphasis(""))
}
