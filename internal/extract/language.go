package extract

// LanguageExtractor finds spoken or written languages by whole-word matching
// against a known-language list ("French" matches, "Frenchman" does not).
type LanguageExtractor struct {
	vocab *Vocabulary
}

// NewLanguageExtractor creates a LanguageExtractor. A nil or empty list
// selects the default set of major world languages; a custom list is
// validated and returns a ConfigurationError when it contains blank entries.
func NewLanguageExtractor(knownLanguages []string) (*LanguageExtractor, error) {
	if len(knownLanguages) == 0 {
		knownLanguages = DefaultLanguages()
	}
	vocab, err := NewVocabulary([]Category{{Label: "Languages", Keywords: knownLanguages}})
	if err != nil {
		return nil, err
	}
	return &LanguageExtractor{vocab: vocab}, nil
}

// Extract returns the sorted canonical language names found in the text.
func (e *LanguageExtractor) Extract(text string) []string {
	return e.vocab.Match(text)
}
