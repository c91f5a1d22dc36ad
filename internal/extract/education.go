package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthYearPattern = regexp.MustCompile(
		`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+((19|20)\d{2})\b`)
)

// EducationExtractor parses structured education entries from resume text.
// A line containing a known degree token yields one entry with the degree,
// an optional graduation year, and the institution inferred from the text
// between degree and year (or after the degree when no year is present).
type EducationExtractor struct {
	degrees  []string
	patterns []*regexp.Regexp
}

// NewEducationExtractor creates an EducationExtractor. A nil or empty list
// selects the default degree table; a custom list is validated for blanks.
func NewEducationExtractor(knownDegrees []string) (*EducationExtractor, error) {
	if len(knownDegrees) == 0 {
		knownDegrees = DefaultDegrees()
	}
	patterns := make([]*regexp.Regexp, len(knownDegrees))
	for i, degree := range knownDegrees {
		if strings.TrimSpace(degree) == "" {
			return nil, &ConfigurationError{Field: "known_degrees", Message: "degree name is empty"}
		}
		patterns[i] = compileKeywordPattern(degree)
	}
	return &EducationExtractor{degrees: knownDegrees, patterns: patterns}, nil
}

// Extract returns one entry per line that mentions a known degree. A line
// matches at most its first qualifying degree keyword.
func (e *EducationExtractor) Extract(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if text == "" {
		return entries
	}

	for _, line := range splitLines(text) {
		for i, degree := range e.degrees {
			if !e.patterns[i].MatchString(line) {
				continue
			}

			year := extractYear(line)
			entries = append(entries, types.EducationEntry{
				Degree:      degree,
				Institution: extractInstitution(line, e.patterns[i], year),
				Year:        year,
				Raw:         line,
			})
			break // one entry per line
		}
	}

	return entries
}

// extractYear finds an explicit 4-digit year or the year of a "Month Year"
// phrase.
func extractYear(line string) string {
	if m := yearPattern.FindString(line); m != "" {
		return m
	}
	if m := monthYearPattern.FindStringSubmatch(line); m != nil {
		return m[2]
	}
	return ""
}

// extractInstitution isolates the institution name as the text between the
// degree mention and the year, or the text following the degree when the
// line carries no year.
func extractInstitution(line string, degreePattern *regexp.Regexp, year string) string {
	if year != "" {
		degreeLoc := degreePattern.FindStringIndex(line)
		yearIdx := strings.Index(line, year)
		if degreeLoc != nil && yearIdx > degreeLoc[1] {
			between := strings.Trim(strings.TrimSpace(line[degreeLoc[1]:yearIdx]), ", ")
			return strings.TrimSpace(between)
		}
	}

	parts := degreePattern.Split(line, -1)
	after := strings.Trim(strings.TrimSpace(parts[len(parts)-1]), ", ")
	return strings.TrimSpace(after)
}
