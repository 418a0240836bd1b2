package generator

import "strings"

// Category is a display hint derived from a section title. It only picks an icon.
type Category string

const (
	CategoryProfile   Category = "profile"
	CategoryTechnical Category = "technical"
	CategoryActivity  Category = "activity"
	CategoryImpact    Category = "impact"
	CategoryExpertise Category = "expertise"
	CategoryCommunity Category = "community"
	CategoryGrowth    Category = "growth"
	CategoryGeneral   Category = "general"
)

var categoryKeywords = []struct {
	keywords []string
	category Category
}{
	{[]string{"summary", "profile"}, CategoryProfile},
	{[]string{"skill", "technical"}, CategoryTechnical},
	{[]string{"activity", "engagement"}, CategoryActivity},
	{[]string{"quality", "impact"}, CategoryImpact},
	{[]string{"expertise", "areas"}, CategoryExpertise},
	{[]string{"collaboration", "community"}, CategoryCommunity},
	{[]string{"recommendation", "growth"}, CategoryGrowth},
}

// CategoryFor returns the first category whose keywords appear in the title.
func CategoryFor(title string) Category {
	lower := strings.ToLower(title)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}

// Icon returns the emoji shown next to a section title.
func (c Category) Icon() string {
	switch c {
	case CategoryProfile:
		return "👤"
	case CategoryTechnical:
		return "💻"
	case CategoryActivity:
		return "📈"
	case CategoryImpact:
		return "⭐"
	case CategoryExpertise:
		return "🎯"
	case CategoryCommunity:
		return "🤝"
	case CategoryGrowth:
		return "🌱"
	default:
		return "📄"
	}
}
