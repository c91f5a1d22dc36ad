// Package aggregate assembles the per-field extractors into whole-document
// parsers for resumes and job descriptions.
package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ResumeOptions configures a ResumeParser. The zero value selects the default
// vocabulary tables and the plain (unclassified, unformatted) output forms.
type ResumeOptions struct {
	// SkillVocabulary overrides the default resume-side skill table.
	SkillVocabulary *extract.Vocabulary

	// Languages overrides the default known-language list.
	Languages []string

	// KnownCertifications overrides the default certification name list.
	KnownCertifications []string

	// Degrees overrides the default degree token list.
	Degrees []string

	// LinkDomains adds custom link classification labels.
	LinkDomains map[string][]string

	// StrictLinks excludes bare scheme-less domains from link extraction.
	StrictLinks bool

	// ClassifyLinks additionally populates the record's per-category link map.
	ClassifyLinks bool

	// FormatPhone renders domestic numbers as (XXX) XXX-XXXX.
	FormatPhone bool
}

// ResumeParser extracts every resume field from plain text. It owns one
// instance of each field extractor; all vocabulary validation happens at
// construction, so Parse itself cannot fail on configuration.
type ResumeParser struct {
	email         *extract.EmailExtractor
	phone         *extract.PhoneExtractor
	links         *extract.LinkExtractor
	skills        *extract.SkillExtractor
	certs         *extract.CertificationExtractor
	education     *extract.EducationExtractor
	experience    *extract.ExperienceExtractor
	languages     *extract.LanguageExtractor
	projects      *extract.ProjectExtractor
	interests     *extract.InterestExtractor
	classifyLinks bool
}

// NewResumeParser creates a ResumeParser. Invalid custom vocabularies are
// reported here as *extract.ConfigurationError.
func NewResumeParser(opts ResumeOptions) (*ResumeParser, error) {
	languages, err := extract.NewLanguageExtractor(opts.Languages)
	if err != nil {
		return nil, err
	}
	certs, err := extract.NewCertificationExtractor(opts.KnownCertifications)
	if err != nil {
		return nil, err
	}
	education, err := extract.NewEducationExtractor(opts.Degrees)
	if err != nil {
		return nil, err
	}

	skills := extract.NewSkillExtractor(opts.SkillVocabulary)

	return &ResumeParser{
		email:      extract.NewEmailExtractor(),
		phone:      &extract.PhoneExtractor{FormatOutput: opts.FormatPhone},
		links:      &extract.LinkExtractor{CustomDomains: opts.LinkDomains, StrictMode: opts.StrictLinks},
		skills:     skills,
		certs:      certs,
		education:  education,
		experience: extract.NewExperienceExtractor(),
		languages:  languages,
		// Project technology lists come from the same skill table.
		projects:      &extract.ProjectExtractor{Technologies: skills.Extract},
		interests:     extract.NewInterestExtractor(),
		classifyLinks: opts.ClassifyLinks,
	}, nil
}

// Parse extracts every field from the resume text. The extractors share no
// state and each goroutine writes a distinct record field, so they run
// concurrently without locking. The returned record always carries the
// complete field set; fields with no signal hold empty values.
func (p *ResumeParser) Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	record := &types.ResumeRecord{LinksByCategory: map[string][]string{}}

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

	run(func() { record.Email = p.email.Extract(text) })
	run(func() { record.Phone = p.phone.Extract(text) })
	run(func() { record.Links = p.links.Extract(text) })
	run(func() { record.Skills = p.skills.Extract(text) })
	run(func() { record.Certifications = p.certs.Extract(text) })
	run(func() { record.Education = p.education.Extract(text) })
	run(func() { record.Experience = p.experience.Extract(text) })
	run(func() { record.Languages = p.languages.Extract(text) })
	run(func() { record.Projects = p.projects.Extract(text) })
	run(func() { record.Interests = p.interests.Extract(text) })
	if p.classifyLinks {
		run(func() { record.LinksByCategory = p.links.Classify(text) })
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return record, nil
}
