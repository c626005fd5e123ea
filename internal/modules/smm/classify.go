package smm

import (
	"fmt"
	"strings"
)

// Category is one label of the closed reply taxonomy. Routing logic only
// ever sees these values; arbitrary model output never leaks through.
type Category string

const (
	CategoryInterested    Category = "INTERESTED"
	CategoryNotInterested Category = "NOT_INTERESTED"
	CategoryQuestion      Category = "QUESTION"
	CategoryAngry         Category = "ANGRY"
	CategoryAutoReply     Category = "AUTO_REPLY"

	// CategoryUnrecognized is the explicit fallback for model output that
	// does not sanitize to a known label.
	CategoryUnrecognized Category = "UNRECOGNIZED"
)

var knownCategories = map[Category]bool{
	CategoryInterested:    true,
	CategoryNotInterested: true,
	CategoryQuestion:      true,
	CategoryAngry:         true,
	CategoryAutoReply:     true,
}

// ParseCategory sanitizes raw model output into a Category. The model may
// add punctuation, lower-casing, or explanation despite instructions, so the
// text is upper-cased and stripped to the label alphabet before matching.
func ParseCategory(raw string) Category {
	var sb strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if (r >= 'A' && r <= 'Z') || r == '_' {
			sb.WriteRune(r)
		}
	}
	c := Category(sb.String())
	if knownCategories[c] {
		return c
	}
	return CategoryUnrecognized
}

// Emoji returns the notification marker for a category.
func (c Category) Emoji() string {
	switch c {
	case CategoryInterested:
		return "✅"
	case CategoryNotInterested:
		return "❌"
	case CategoryQuestion:
		return "❓"
	case CategoryAngry:
		return "💢"
	case CategoryAutoReply:
		return "🤖"
	default:
		return "📧"
	}
}

// classifyPrompt constrains the fast-tier model to exactly one label.
func classifyPrompt(replyText string) string {
	return fmt.Sprintf(`Classify this reply to a magazine outreach email into ONE category:
INTERESTED, NOT_INTERESTED, QUESTION, ANGRY, AUTO_REPLY

Reply: "%s"

Category (one word only):`, replyText)
}
