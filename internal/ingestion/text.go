// Package ingestion converts an uploaded profile document into the plain
// text the extraction adapter consumes.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)
var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes extracted document text while preserving its line
// structure: CRLF endings become LF, runs of spaces collapse, and at most two
// consecutive blank lines survive.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses interior whitespace but keeps leading indentation and
// bullet markers, which carry meaning in an exported profile.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if isBulletLine(line) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	indent := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item.
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
