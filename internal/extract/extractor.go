// Package extract provides rule-based field extractors that derive structured
// information from raw resume and job description text. Each extractor is a
// pure function of its input text and its construction-time configuration:
// extractors never fail on malformed text, they degrade to empty results.
// All extractors are safe for concurrent use once constructed.
package extract

import (
	"regexp"
	"strings"
)

// ListExtractor is the shared contract for extractors whose result is a flat,
// sorted, deduplicated list of strings. Aggregators depend on this interface
// rather than on the concrete extractor types.
type ListExtractor interface {
	Extract(text string) []string
}

// obfuscations maps the common "at"/"dot" spellings people use to hide
// contact details from scrapers back to their literal characters. An optional
// single space around bracketed tokens is swallowed so "john [at] example"
// normalizes to "john@example".
var obfuscations = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\s?\[at\]\s?`), "@"},
	{regexp.MustCompile(`\s?\(at\)\s?`), "@"},
	{regexp.MustCompile(`\s+at\s+`), "@"},
	{regexp.MustCompile(`\s?\[dot\]\s?`), "."},
	{regexp.MustCompile(`\s?\(dot\)\s?`), "."},
	{regexp.MustCompile(`\s+dot\s+`), "."},
}

// deobfuscate normalizes bracketed and spelled-out "at"/"dot" tokens so the
// downstream email, phone and link patterns can match.
func deobfuscate(text string) string {
	for _, o := range obfuscations {
		text = o.pattern.ReplaceAllString(text, o.replacement)
	}
	return text
}

// splitLines returns the non-empty trimmed lines of text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// trimBullet strips leading and trailing bullet and dash decorations from a line.
func trimBullet(line string) string {
	return strings.Trim(line, "•-–—* \t")
}
