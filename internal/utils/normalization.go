package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace flattens every run of whitespace to a single space and
// trims the result. Idempotent: applying it twice yields the same string.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func NormalizeMode(mode string) string {
	return strings.TrimSpace(mode)
}

// StripFences removes a surrounding markdown code fence (``` or ```json) that
// models often wrap structured output in, and trims whitespace.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if idx := strings.Index(out, "\n"); idx >= 0 {
		// drop the language tag on the opening fence line
		out = out[idx+1:]
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
