package extract

// SkillExtractor finds technical and soft skills by whole-word matching
// against a categorized vocabulary.
type SkillExtractor struct {
	vocab *Vocabulary
}

// NewSkillExtractor creates a SkillExtractor. A nil vocabulary selects the
// default resume-side table.
func NewSkillExtractor(vocab *Vocabulary) *SkillExtractor {
	if vocab == nil {
		vocab = MustVocabulary(DefaultSkillCategories())
	}
	return &SkillExtractor{vocab: vocab}
}

// NewJobSkillExtractor creates a SkillExtractor over the default job-side
// table.
func NewJobSkillExtractor() *SkillExtractor {
	return &SkillExtractor{vocab: MustVocabulary(DefaultJobSkillCategories())}
}

// Vocabulary exposes the extractor's table, e.g. for deriving technology
// lists from project descriptions.
func (e *SkillExtractor) Vocabulary() *Vocabulary {
	return e.vocab
}

// Extract returns the sorted canonical skill names found in the text.
func (e *SkillExtractor) Extract(text string) []string {
	return e.vocab.Match(text)
}

// ExtractGrouped returns the skills found, grouped by category with empty
// categories omitted.
func (e *SkillExtractor) ExtractGrouped(text string) map[string][]string {
	return e.vocab.MatchGrouped(text)
}
