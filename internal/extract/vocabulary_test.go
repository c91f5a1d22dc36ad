package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_Valid(t *testing.T) {
	v, err := NewVocabulary([]Category{
		{Label: "Languages", Keywords: []string{"Go", "Python"}},
		{Label: "Tools", Keywords: []string{"Docker"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Languages", "Tools"}, v.Categories())
	assert.Equal(t, []string{"Go", "Python"}, v.Keywords("Languages"))
	assert.Nil(t, v.Keywords("Unknown"))
}

func TestNewVocabulary_DuplicateCategory(t *testing.T) {
	_, err := NewVocabulary([]Category{
		{Label: "Tools", Keywords: []string{"Docker"}},
		{Label: "Tools", Keywords: []string{"Helm"}},
	})
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Tools", cfgErr.Field)
}

func TestNewVocabulary_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
	}{
		{"no categories", nil},
		{"empty label", []Category{{Label: " ", Keywords: []string{"x"}}}},
		{"no keywords", []Category{{Label: "Tools", Keywords: nil}}},
		{"blank keyword", []Category{{Label: "Tools", Keywords: []string{""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVocabulary(tt.categories)
			assert.Error(t, err)
		})
	}
}

func TestVocabulary_Match_WholeWord(t *testing.T) {
	v := MustVocabulary([]Category{{Label: "Languages", Keywords: []string{"Go", "French"}}})

	// "Frenchman" and "Golang" must not match the whole words.
	assert.Empty(t, v.Match("a Frenchman writing Golang"))
	assert.Equal(t, []string{"French", "Go"}, v.Match("Fluent in French, writes Go code"))
}

func TestVocabulary_Match_CanonicalCasing(t *testing.T) {
	v := MustVocabulary([]Category{{Label: "Cloud", Keywords: []string{"AWS", "Docker"}}})
	assert.Equal(t, []string{"AWS", "Docker"}, v.Match("experience with aws and DOCKER"))
}

func TestVocabulary_Match_PunctuatedKeywords(t *testing.T) {
	v := MustVocabulary([]Category{{Label: "Languages", Keywords: []string{"C++", "C#"}}})
	assert.Equal(t, []string{"C#", "C++"}, v.Match("wrote C++ and C# services"))
}

func TestVocabulary_MatchGrouped_OmitsEmptyCategories(t *testing.T) {
	v := MustVocabulary([]Category{
		{Label: "Languages", Keywords: []string{"Python"}},
		{Label: "Cloud", Keywords: []string{"AWS"}},
	})

	grouped := v.MatchGrouped("Python all day")
	assert.Equal(t, map[string][]string{"Languages": {"Python"}}, grouped)
}

func TestVocabulary_Match_EmptyText(t *testing.T) {
	v := MustVocabulary([]Category{{Label: "Languages", Keywords: []string{"Go"}}})
	assert.Empty(t, v.Match(""))
	assert.Empty(t, v.MatchGrouped(""))
}
