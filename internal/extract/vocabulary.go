package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Category is one labeled group of canonical keywords in a Vocabulary.
type Category struct {
	Label    string
	Keywords []string
}

// Vocabulary is an ordered, read-only mapping from category label to canonical
// keywords. Matching is whole-word and case-insensitive; a hit anywhere in the
// text contributes the canonical keyword, not the matched substring.
// Vocabularies are validated once at construction and shared freely across
// concurrent extractor calls.
type Vocabulary struct {
	categories []Category
	patterns   map[string]*regexp.Regexp // canonical keyword -> compiled word-boundary pattern
}

// NewVocabulary builds a Vocabulary from ordered categories. Category labels
// must be unique and non-empty; every category needs at least one keyword.
func NewVocabulary(categories []Category) (*Vocabulary, error) {
	if len(categories) == 0 {
		return nil, &ConfigurationError{Message: "vocabulary has no categories"}
	}

	seen := make(map[string]bool, len(categories))
	patterns := make(map[string]*regexp.Regexp)

	for _, cat := range categories {
		label := strings.TrimSpace(cat.Label)
		if label == "" {
			return nil, &ConfigurationError{Message: "category label is empty"}
		}
		if seen[label] {
			return nil, &ConfigurationError{Field: label, Message: "duplicate category label"}
		}
		seen[label] = true

		if len(cat.Keywords) == 0 {
			return nil, &ConfigurationError{Field: label, Message: "category has no keywords"}
		}
		for _, kw := range cat.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, &ConfigurationError{Field: label, Message: "keyword is empty"}
			}
			if _, ok := patterns[kw]; ok {
				continue
			}
			patterns[kw] = compileKeywordPattern(kw)
		}
	}

	return &Vocabulary{categories: categories, patterns: patterns}, nil
}

// MustVocabulary is like NewVocabulary but panics on invalid input. It is
// intended for the package-level default tables, which are known-good.
func MustVocabulary(categories []Category) *Vocabulary {
	v, err := NewVocabulary(categories)
	if err != nil {
		panic(fmt.Sprintf("invalid default vocabulary: %v", err))
	}
	return v
}

// compileKeywordPattern builds a case-insensitive whole-word pattern for a
// keyword. Keywords that start or end with a non-word character (C++, C#,
// .NET) cannot use \b on that side, so the boundary is dropped there.
func compileKeywordPattern(keyword string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(keyword))

	prefix, suffix := `\b`, `\b`
	if !isWordChar(keyword[0]) {
		prefix = ``
	}
	if !isWordChar(keyword[len(keyword)-1]) {
		suffix = ``
	}

	return regexp.MustCompile(`(?i)` + prefix + escaped + suffix)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Categories returns the ordered category labels.
func (v *Vocabulary) Categories() []string {
	labels := make([]string, len(v.categories))
	for i, cat := range v.categories {
		labels[i] = cat.Label
	}
	return labels
}

// Keywords returns the canonical keywords of one category, or nil if the
// label is unknown.
func (v *Vocabulary) Keywords(label string) []string {
	for _, cat := range v.categories {
		if cat.Label == label {
			out := make([]string, len(cat.Keywords))
			copy(out, cat.Keywords)
			return out
		}
	}
	return nil
}

// Match returns the sorted, deduplicated canonical keywords found anywhere in
// the text. An empty text yields an empty list.
func (v *Vocabulary) Match(text string) []string {
	if text == "" {
		return []string{}
	}

	found := make(map[string]bool)
	for _, cat := range v.categories {
		for _, kw := range cat.Keywords {
			if found[kw] {
				continue
			}
			if v.patterns[kw].MatchString(text) {
				found[kw] = true
			}
		}
	}

	return sortedKeys(found)
}

// MatchGrouped returns matches grouped by category label, omitting categories
// with no hits. Keywords within a category are sorted and deduplicated.
func (v *Vocabulary) MatchGrouped(text string) map[string][]string {
	grouped := make(map[string][]string)
	if text == "" {
		return grouped
	}

	for _, cat := range v.categories {
		found := make(map[string]bool)
		for _, kw := range cat.Keywords {
			if found[kw] {
				continue
			}
			if v.patterns[kw].MatchString(text) {
				found[kw] = true
			}
		}
		if len(found) > 0 {
			grouped[cat.Label] = sortedKeys(found)
		}
	}

	return grouped
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
