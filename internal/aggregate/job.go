package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/types"
)

// JobOptions configures a JobParser. The zero value selects the default
// job-side vocabulary tables.
type JobOptions struct {
	// SkillVocabulary overrides the default job-side skill table.
	SkillVocabulary *extract.Vocabulary

	// Languages overrides the default known-language list.
	Languages []string

	// KnownCertifications overrides the default certification name list.
	KnownCertifications []string

	// FieldsOfStudy overrides the default field-of-study list for education
	// requirements.
	FieldsOfStudy []string
}

// JobParser extracts the five requirement fields from job description text.
type JobParser struct {
	skills     *extract.SkillExtractor
	certs      *extract.CertificationExtractor
	education  *extract.JobEducationExtractor
	experience *extract.JobExperienceExtractor
	languages  *extract.LanguageExtractor
}

// NewJobParser creates a JobParser. Invalid custom vocabularies are reported
// here as *extract.ConfigurationError.
func NewJobParser(opts JobOptions) (*JobParser, error) {
	languages, err := extract.NewLanguageExtractor(opts.Languages)
	if err != nil {
		return nil, err
	}
	certs, err := extract.NewCertificationExtractor(opts.KnownCertifications)
	if err != nil {
		return nil, err
	}
	education, err := extract.NewJobEducationExtractor(opts.FieldsOfStudy)
	if err != nil {
		return nil, err
	}

	skills := extract.NewJobSkillExtractor()
	if opts.SkillVocabulary != nil {
		skills = extract.NewSkillExtractor(opts.SkillVocabulary)
	}

	return &JobParser{
		skills:     skills,
		certs:      certs,
		education:  education,
		experience: extract.NewJobExperienceExtractor(),
		languages:  languages,
	}, nil
}

// Parse extracts every requirement field from the job description text. Like
// ResumeParser.Parse, extractors run concurrently and each goroutine writes a
// distinct record field.
func (p *JobParser) Parse(ctx context.Context, text string) (*types.JobRecord, error) {
	record := &types.JobRecord{}

	g, gCtx := errgroup.WithContext(ctx)
	run := func(fill func()) {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fill()
			return nil
		})
	}

	run(func() { record.Skills = p.skills.Extract(text) })
	run(func() { record.Certifications = p.certs.Extract(text) })
	run(func() { record.Education = p.education.Extract(text) })
	run(func() { record.Experience = p.experience.Extract(text) })
	run(func() { record.Languages = p.languages.Extract(text) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return record, nil
}
