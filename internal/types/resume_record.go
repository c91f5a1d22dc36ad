// Package types provides type definitions for structured data used throughout
// the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured result of parsing one resume. Every field is
// always present: an extractor that found nothing leaves its field empty, it
// never removes it. Records are immutable after construction; re-parsing
// produces a new record.
type ResumeRecord struct {
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Links           []string            `json:"links"`
	LinksByCategory map[string][]string `json:"links_by_category"`
	Skills          []string            `json:"skills"`
	Projects        []ProjectEntry      `json:"projects"`
	Experience      []ExperienceEntry   `json:"experience"`
	Certifications  []string            `json:"certifications"`
	Languages       []string            `json:"languages"`
	Interests       []string            `json:"interests"`
	Education       []EducationEntry    `json:"education"`
}

// EducationEntry is one parsed education line from a resume.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Raw         string `json:"raw"`
}

// ExperienceEntry is one parsed work experience block from a resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Raw         string `json:"raw"`
}

// ProjectEntry is one parsed project block from a resume.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// ResumeFields lists the field names of a ResumeRecord in their canonical
// order. Aggregators and tests use it to assert that parsed records always
// carry the complete field set.
func ResumeFields() []string {
	return []string{
		"email", "phone", "links", "links_by_category", "skills", "projects",
		"experience", "certifications", "languages", "interests", "education",
	}
}
