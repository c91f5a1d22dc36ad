// Package ingestion turns resume and job documents into the cleaned plain
// text the parsers consume: PDF/DOCX decoding, whitespace and bullet
// normalization, and section-header canonicalization.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// sectionKeywords are the resume section names canonicalized to a
// "Keyword:" line during cleaning.
var sectionKeywords = []string{
	"Summary", "Professional Summary", "Career Objective",
	"Skills", "Experience", "Education", "Certifications",
	"Projects", "Languages", "Interests", "Volunteer", "References",
}

var (
	bulletPattern = regexp.MustCompile(`^[•·●‣▪*]\s*`)
	spacePattern  = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes raw document text for parsing: line endings become
// LF, every line is trimmed, decorative bullets become "-", runs of blank
// lines collapse, and a line consisting solely of a known section name is
// rewritten to its canonical "Name:" form.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	line = bulletPattern.ReplaceAllString(line, "- ")
	line = spacePattern.ReplaceAllString(line, " ")

	if canonical, ok := sectionHeader(line); ok {
		return canonical + ":"
	}
	return line
}

// sectionHeader reports whether the line is exactly a known section name,
// with or without a trailing colon, and returns its canonical spelling.
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSuffix(line, ":")
	for _, keyword := range sectionKeywords {
		if strings.EqualFold(trimmed, keyword) {
			return keyword, true
		}
	}
	return "", false
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2.
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// IngestFromFile reads a document file, decodes it by extension, cleans the
// text and returns it with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractDocumentText(path, data)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(text)
	return cleanedText, NewMetadata(cleanedText, path), nil
}
