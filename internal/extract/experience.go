package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultExperienceWindow bounds how many lines below the experience header
// are scanned for entries.
const DefaultExperienceWindow = 40

var (
	experienceSectionKeywords = []string{"experience", "work history", "employment", "professional background"}
	experienceStopKeywords    = []string{"education", "certification", "project"}

	titleCompanyPattern = regexp.MustCompile(`^([A-Za-z\s/()\-]+?)\s+[-–—]\s+(.+)$`)
	dateRangePattern    = regexp.MustCompile(`(?i)(\b\d{4}\b).{0,5}(\bPresent\b|\b\d{4}\b)`)
)

// ExperienceExtractor parses structured work experience entries from resume
// text. It locates the experience section by header keyword, then splits the
// following lines into entries on "Title – Company" lines, attaching date
// ranges and "-" bullet descriptions until a stop-section keyword appears.
type ExperienceExtractor struct {
	// MaxLines bounds the scan window below the section header. Zero selects
	// DefaultExperienceWindow.
	MaxLines int
}

// NewExperienceExtractor creates an ExperienceExtractor with the default
// window.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// Extract returns the experience entries found, in document order.
func (e *ExperienceExtractor) Extract(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if text == "" {
		return entries
	}

	window := e.MaxLines
	if window <= 0 {
		window = DefaultExperienceWindow
	}

	lines := splitLines(text)
	var section []string
	for i, line := range lines {
		if containsAny(strings.ToLower(line), experienceSectionKeywords) {
			end := i + 1 + window
			if end > len(lines) {
				end = len(lines)
			}
			section = lines[i+1 : end]
			break
		}
	}
	if len(section) == 0 {
		return entries
	}

	var current *types.ExperienceEntry
	var bullets []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(bullets, " "))
		entries = append(entries, *current)
		current = nil
		bullets = nil
	}

	for _, line := range section {
		if containsAny(strings.ToLower(line), experienceStopKeywords) {
			break
		}

		if m := titleCompanyPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &types.ExperienceEntry{
				Title:   strings.TrimSpace(m[1]),
				Company: strings.TrimSpace(m[2]),
				Raw:     line,
			}
			continue
		}

		if m := dateRangePattern.FindString(line); m != "" && current != nil {
			current.Date = m
			continue
		}

		if strings.HasPrefix(line, "-") {
			bullets = append(bullets, line)
		}
	}
	flush()

	return entries
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
