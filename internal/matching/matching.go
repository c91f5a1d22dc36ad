// Package matching scores a parsed resume against a parsed job description.
// Each weighted field yields a sub-score in [0, 1]; the overall score is the
// weighted sum scaled to [0, 100], and a feedback report names the missing
// items per field.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Field names used in sub-score and feedback maps.
const (
	FieldSkills         = "Skills"
	FieldCertifications = "Certifications"
	FieldEducation      = "Education"
	FieldExperience     = "Experience"
	FieldLanguages      = "Languages"
)

// Field weights. They sum to 1.0 so that a perfect resume scores 100.
const (
	weightSkills         = 0.40
	weightCertifications = 0.20
	weightEducation      = 0.15
	weightExperience     = 0.15
	weightLanguages      = 0.10
)

// Policy controls the Education and Experience scoring paths, whose intended
// treatment is less settled than the set-overlap fields.
type Policy struct {
	// IncludeEducation adds the education sub-score, at its weight, to the
	// overall score.
	IncludeEducation bool

	// ScoreExperience computes a real experience sub-score. When false the
	// sub-score is a fixed 0 placeholder, still carried at its weight.
	ScoreExperience bool

	// EducationFeedback and ExperienceFeedback add the corresponding entries
	// to the feedback report.
	EducationFeedback  bool
	ExperienceFeedback bool
}

// DefaultPolicy includes education, keeps the experience placeholder, and
// limits feedback to the set-overlap fields.
func DefaultPolicy() Policy {
	return Policy{IncludeEducation: true}
}

// Engine scores resumes against jobs under a fixed policy. It is stateless
// and safe for concurrent use.
type Engine struct {
	policy Policy
}

// NewEngine creates an Engine with the given policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// ComputeMatch scores the resume against the job under the default policy.
func ComputeMatch(resume *types.ResumeRecord, job *types.JobRecord) *types.MatchScore {
	return NewEngine(DefaultPolicy()).ComputeMatch(resume, job)
}

// ComputeMatch computes per-field sub-scores, the weighted overall score and
// the gap feedback. An empty requirement set on the job side always scores a
// vacuous 1.0 for its field.
func (e *Engine) ComputeMatch(resume *types.ResumeRecord, job *types.JobRecord) *types.MatchScore {
	skills := overlapScore(resume.Skills, job.Skills)
	certs := overlapScore(resume.Certifications, job.Certifications)
	education := educationScore(resume.Education, job.Education)
	languages := overlapScore(resume.Languages, job.Languages)

	experience := 0.0
	if e.policy.ScoreExperience {
		experience = experienceScore(resume.Experience, job.Experience)
	}

	total := skills*weightSkills +
		certs*weightCertifications +
		experience*weightExperience +
		languages*weightLanguages
	if e.policy.IncludeEducation {
		total += education * weightEducation
	}

	return &types.MatchScore{
		Overall: total * 100,
		FieldScores: map[string]float64{
			FieldSkills:         skills,
			FieldCertifications: certs,
			FieldEducation:      education,
			FieldExperience:     experience,
			FieldLanguages:      languages,
		},
		Feedback: e.feedback(resume, job),
	}
}

// overlapScore is |resume ∩ job| / |job|, or a vacuous 1.0 when the job side
// requires nothing.
func overlapScore(resume, job []string) float64 {
	if len(job) == 0 {
		return 1.0
	}
	have := make(map[string]bool, len(resume))
	for _, item := range resume {
		have[item] = true
	}
	matched := 0
	for _, item := range dedup(job) {
		if have[item] {
			matched++
		}
	}
	return float64(matched) / float64(len(dedup(job)))
}

// educationScore is all-or-nothing: 1.0 when every job requirement appears in
// the resume's education entries (as a degree name or inside a raw line,
// case-insensitively), 0.0 otherwise. An empty requirement set scores 1.0.
func educationScore(resume []types.EducationEntry, job []string) float64 {
	if len(job) == 0 {
		return 1.0
	}
	for _, req := range job {
		if !educationSatisfies(resume, req) {
			return 0.0
		}
	}
	return 1.0
}

func educationSatisfies(resume []types.EducationEntry, requirement string) bool {
	req := strings.ToLower(requirement)
	for _, entry := range resume {
		if strings.EqualFold(entry.Degree, requirement) ||
			strings.Contains(strings.ToLower(entry.Raw), req) {
			return true
		}
	}
	return false
}

// experienceScore is the fraction of job experience phrases that appear in
// the resume's experience entries, case-insensitively.
func experienceScore(resume []types.ExperienceEntry, job []string) float64 {
	if len(job) == 0 {
		return 1.0
	}
	var haystack strings.Builder
	for _, entry := range resume {
		haystack.WriteString(strings.ToLower(entry.Raw))
		haystack.WriteString("\n")
		haystack.WriteString(strings.ToLower(entry.Description))
		haystack.WriteString("\n")
	}
	text := haystack.String()

	matched := 0
	requirements := dedup(job)
	for _, req := range requirements {
		if strings.Contains(text, strings.ToLower(req)) {
			matched++
		}
	}
	return float64(matched) / float64(len(requirements))
}

func (e *Engine) feedback(resume *types.ResumeRecord, job *types.JobRecord) map[string]string {
	fb := map[string]string{
		FieldSkills: gapMessage(resume.Skills, job.Skills,
			"Missing skills: %s", "All required skills present."),
		FieldCertifications: gapMessage(resume.Certifications, job.Certifications,
			"Missing certifications: %s", "All required certifications present."),
		FieldLanguages: gapMessage(resume.Languages, job.Languages,
			"Missing languages: %s", "Languages meet job requirements."),
	}

	if e.policy.EducationFeedback {
		if educationScore(resume.Education, job.Education) == 1.0 {
			fb[FieldEducation] = "Education meets job requirements."
		} else {
			fb[FieldEducation] = "Education does not meet job requirements."
		}
	}
	if e.policy.ExperienceFeedback {
		if experienceScore(resume.Experience, job.Experience) == 1.0 {
			fb[FieldExperience] = "Experience meets job requirements."
		} else {
			fb[FieldExperience] = "Experience does not meet job requirements."
		}
	}
	return fb
}

// gapMessage renders the sorted job-minus-resume difference into the missing
// format, or the affirmative message when nothing is missing.
func gapMessage(resume, job []string, missingFormat, okMessage string) string {
	have := make(map[string]bool, len(resume))
	for _, item := range resume {
		have[item] = true
	}
	var missing []string
	for _, item := range dedup(job) {
		if !have[item] {
			missing = append(missing, item)
		}
	}
	if len(missing) == 0 {
		return okMessage
	}
	sort.Strings(missing)
	return fmt.Sprintf(missingFormat, strings.Join(missing, ", "))
}

func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
