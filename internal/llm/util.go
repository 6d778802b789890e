// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips the decoration LLMs wrap around JSON answers even
// when instructed not to: markdown code fences, conversational preamble, and
// trailing chatter after the closing brace.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// No fences: find the first JSON value, ignoring any preamble sentence
	// before it and any trailing text after it.
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start := objStart
	extract := extractJSONObject
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		extract = extractJSONArray
	}
	if start < 0 {
		return text
	}

	if candidate := extract(text[start:]); candidate != "" {
		return candidate
	}
	return text
}

// extractJSONObject returns the balanced {...} value at the start of text,
// or "" when text does not begin with a complete object. Braces inside
// string literals and escaped quotes are handled.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced [...] value at the start of text.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, close byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// skip structural characters inside string literals
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
