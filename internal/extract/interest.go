package extract

import (
	"regexp"
	"strings"
)

var (
	interestHeaders = []string{"interests", "hobbies", "personal interests", "activities"}

	// A capitalized "Word:" line marks the start of another section.
	sectionHeaderPattern = regexp.MustCompile(`^[A-Z][a-zA-Z ]+:$`)
	interestSplitPattern = regexp.MustCompile(`[•\-–]`)
	leadingBulletPattern = regexp.MustCompile(`^[-•\s]+`)
)

// InterestExtractor collects personal interests or hobbies from resume text.
// It scans below an interests/hobbies/activities header until a line that
// looks like a new section header, splitting bullet-separated lines into
// individual interest phrases.
type InterestExtractor struct{}

// NewInterestExtractor creates an InterestExtractor.
func NewInterestExtractor() *InterestExtractor {
	return &InterestExtractor{}
}

// Extract returns the interest phrases found, in document order.
func (e *InterestExtractor) Extract(text string) []string {
	interests := []string{}
	if text == "" {
		return interests
	}

	var section []string
	collecting := false
	for _, line := range splitLines(text) {
		if !collecting {
			if containsAny(strings.ToLower(line), interestHeaders) {
				collecting = true
			}
			continue
		}

		// A "Word:" header or a very short line means a new section started.
		if sectionHeaderPattern.MatchString(line) || len(strings.Fields(line)) <= 2 {
			break
		}
		section = append(section, line)
	}

	for _, line := range section {
		line = leadingBulletPattern.ReplaceAllString(line, "")
		for _, part := range interestSplitPattern.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				interests = append(interests, part)
			}
		}
	}

	return interests
}
