// Package textparse extracts structured fragments from free-text model
// output. Model output format is not a contract this system controls, so
// every function here returns a defined failure value instead of an error.
package textparse

import (
	"encoding/json"
	"strings"
)

// ExtractJSON returns the first balanced JSON object or array substring in s.
// Markdown code fences are ignored. Returns (nil, false) when no valid JSON
// can be found.
func ExtractJSON(s string) (json.RawMessage, bool) {
	s = stripFences(s)

	start := -1
	for i, r := range s {
		if r == '{' || r == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if json.Valid([]byte(candidate)) {
					return json.RawMessage(candidate), true
				}
				return nil, false
			}
		}
	}
	return nil, false
}

// Headline returns the first non-empty line with leading heading markers
// stripped and whitespace trimmed. Empty input yields "".
func Headline(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}

// ExtractSubject splits a generated email into subject and body. The model
// is asked to lead with a "Subject line: ..." marker; when the marker is
// missing the subject comes back empty and the body is the full text.
func ExtractSubject(email string) (subject, body string) {
	lines := strings.Split(email, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		var rest string
		switch {
		case strings.HasPrefix(lower, "subject line:"):
			rest = trimmed[len("subject line:"):]
		case strings.HasPrefix(lower, "subject:"):
			rest = trimmed[len("subject:"):]
		default:
			continue
		}
		subject = strings.TrimSpace(rest)
		body = strings.TrimSpace(strings.Join(append(append([]string{}, lines[:i]...), lines[i+1:]...), "\n"))
		return subject, body
	}
	return "", strings.TrimSpace(email)
}

// WordEstimate counts whitespace-separated words.
func WordEstimate(s string) int {
	return len(strings.Fields(s))
}

// ParagraphsHTML converts plain text into a sequence of <p> blocks for
// HTML email bodies.
func ParagraphsHTML(s string) string {
	var sb strings.Builder
	for _, para := range strings.Split(s, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(para)
		sb.WriteString("</p>")
	}
	return sb.String()
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
