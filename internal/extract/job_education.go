package extract

import (
	"regexp"
	"sort"
	"strings"
)

var eduContextPattern = regexp.MustCompile(
	`(?i)(degree in|background in|education in|required degree|educational background|field of study)`)

// JobEducationExtractor finds education requirements in job description
// text: degree levels, fields of study, and contextual phrases. A line where
// neither a degree nor a field matched, but an education context phrase is
// present, is added verbatim as a fallback signal.
type JobEducationExtractor struct {
	degreeKeywords []string
	fieldKeywords  []string
}

// NewJobEducationExtractor creates a JobEducationExtractor. A nil or empty
// field list selects the default fields of study; a custom list is validated
// for blanks.
func NewJobEducationExtractor(fieldKeywords []string) (*JobEducationExtractor, error) {
	if len(fieldKeywords) == 0 {
		fieldKeywords = DefaultFieldsOfStudy()
	}
	for _, field := range fieldKeywords {
		if strings.TrimSpace(field) == "" {
			return nil, &ConfigurationError{Field: "field_keywords", Message: "field of study is empty"}
		}
	}
	return &JobEducationExtractor{
		degreeKeywords: DefaultJobDegreeKeywords(),
		fieldKeywords:  fieldKeywords,
	}, nil
}

// Extract returns the sorted, deduplicated education requirements found.
func (e *JobEducationExtractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	results := make(map[string]bool)

	for _, line := range splitLines(text) {
		line = trimBullet(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		found := false

		for _, kw := range e.degreeKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				results[kw] = true
				found = true
			}
		}
		for _, field := range e.fieldKeywords {
			if strings.Contains(lower, strings.ToLower(field)) {
				results[field] = true
				found = true
			}
		}

		if !found && eduContextPattern.MatchString(line) {
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
