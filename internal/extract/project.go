package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultProjectWindow bounds how many lines below the project header are
// scanned.
const DefaultProjectWindow = 10

var (
	projectSectionKeywords = []string{"project", "projects", "personal project", "capstone"}
	projectStopKeywords    = []string{"education", "experience", "certifications", "languages", "interests"}

	// Short capitalized lines are treated as project titles.
	projectTitlePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9\s\-()]{3,40}$`)
)

// TechnologyFunc derives a technology list from a project description. It is
// a capability the caller supplies (typically backed by its own skill
// vocabulary), not a concrete dependency of the extractor.
type TechnologyFunc func(description string) []string

// ProjectExtractor parses project blocks from resume text. Within a bounded
// window below the project section header, short capitalized lines start a
// new project and other lines continue the current description.
type ProjectExtractor struct {
	// Technologies, when set, populates each entry's technology list from
	// its assembled description.
	Technologies TechnologyFunc

	// MaxLines bounds the scan window below the section header. Zero selects
	// DefaultProjectWindow.
	MaxLines int
}

// NewProjectExtractor creates a ProjectExtractor without technology
// derivation.
func NewProjectExtractor() *ProjectExtractor {
	return &ProjectExtractor{}
}

// Extract returns the project entries found, in document order.
func (e *ProjectExtractor) Extract(text string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if text == "" {
		return projects
	}

	window := e.MaxLines
	if window <= 0 {
		window = DefaultProjectWindow
	}

	lines := splitLines(text)
	start := -1
	for i, line := range lines {
		if containsAny(strings.ToLower(line), projectSectionKeywords) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return projects
	}

	var block []string
	for _, line := range lines[start:] {
		if containsAny(strings.ToLower(line), projectStopKeywords) {
			break
		}
		if len(block) == window {
			break
		}
		block = append(block, line)
	}

	var title string
	var description []string

	flush := func() {
		if title == "" {
			return
		}
		entry := types.ProjectEntry{
			Title:       title,
			Description: strings.TrimSpace(strings.Join(description, " ")),
		}
		if e.Technologies != nil {
			entry.Technologies = e.Technologies(entry.Description)
		}
		projects = append(projects, entry)
		title = ""
		description = nil
	}

	for _, line := range block {
		if projectTitlePattern.MatchString(line) && !strings.HasPrefix(line, "-") {
			flush()
			title = line
			continue
		}
		description = append(description, line)
	}
	flush()

	return projects
}
