package extract

import (
	"regexp"
	"sort"
	"strings"
)

var yearCountPattern = regexp.MustCompile(
	`(?i)\b\d{1,2}\s?\+?\s?(\+|plus|or more)?\s?(years|yrs)\s?(of)?\s?(experience|exp)?\b`)

var experienceContextKeywords = []string{
	"experience in", "hands-on experience", "proven experience", "background in",
	"track record", "prior experience", "extensive experience", "familiarity with",
	"working knowledge", "at least", "minimum of",
}

// JobExperienceExtractor finds experience requirements in job description
// text: year-count phrases ("3+ years of experience") and contextual phrases.
// Any line containing a contextual phrase is returned whole.
type JobExperienceExtractor struct{}

// NewJobExperienceExtractor creates a JobExperienceExtractor.
func NewJobExperienceExtractor() *JobExperienceExtractor {
	return &JobExperienceExtractor{}
}

// Extract returns the sorted, deduplicated experience phrases found.
func (e *JobExperienceExtractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	results := make(map[string]bool)

	for _, line := range splitLines(text) {
		line = trimBullet(line)
		if line == "" {
			continue
		}

		for _, m := range yearCountPattern.FindAllString(line, -1) {
			results[strings.TrimSpace(m)] = true
		}

		if containsAny(strings.ToLower(line), experienceContextKeywords) {
			results[line] = true
		}
	}

	out := make([]string, 0, len(results))
	for r := range results {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
