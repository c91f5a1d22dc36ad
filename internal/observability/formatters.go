// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// itemList renders up to maxItemsToShow entries as an indented bullet list.
func itemList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintResumeRecord outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	if record.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	}
	if record.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.Phone))
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	itemList(&sb, "Skills", record.Skills)
	itemList(&sb, "Certifications", record.Certifications)
	itemList(&sb, "Languages", record.Languages)
	itemList(&sb, "Links", record.Links)

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := record.Experience[i]
			line := entry.Title
			if entry.Company != "" {
				line += " @ " + entry.Company
			}
			if entry.Date != "" {
				line += " (" + entry.Date + ")"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range record.Education {
			line := entry.Degree
			if entry.Year != "" {
				line += ", " + entry.Year
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("(no fields extracted)")
	}
	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRecord outputs a human-readable summary of a parsed job description.
func (p *Printer) PrintJobRecord(record *types.JobRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	itemList(&sb, "Required Skills", record.Skills)
	itemList(&sb, "Certifications", record.Certifications)
	itemList(&sb, "Education", record.Education)
	itemList(&sb, "Experience", record.Experience)
	itemList(&sb, "Languages", record.Languages)

	if sb.Len() == 0 {
		sb.WriteString("(no requirements extracted)")
	}
	p.printBox("PARSED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs the overall score, per-field breakdown and gap
// feedback for one match run.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.2f / 100\n\n", score.Overall))

	// Canonical field order first, then anything unexpected.
	order := []string{
		matching.FieldSkills,
		matching.FieldCertifications,
		matching.FieldEducation,
		matching.FieldExperience,
		matching.FieldLanguages,
	}
	seen := make(map[string]bool, len(order))
	for _, field := range order {
		if value, ok := score.FieldScores[field]; ok {
			sb.WriteString(fmt.Sprintf("%-15s %5.1f%%\n", field, value*100))
			seen[field] = true
		}
	}
	var extra []string
	for field := range score.FieldScores {
		if !seen[field] {
			extra = append(extra, field)
		}
	}
	sort.Strings(extra)
	for _, field := range extra {
		sb.WriteString(fmt.Sprintf("%-15s %5.1f%%\n", field, score.FieldScores[field]*100))
	}

	if len(score.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, field := range order {
			if message, ok := score.Feedback[field]; ok {
				sb.WriteString(fmt.Sprintf("  %s\n", message))
			}
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
