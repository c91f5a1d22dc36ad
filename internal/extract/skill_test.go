package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillExtractor_DefaultTable(t *testing.T) {
	e := NewSkillExtractor(nil)
	skills := e.Extract("Python, Django, and PostgreSQL, with AWS and Docker")
	assert.Equal(t, []string{"AWS", "Django", "Docker", "PostgreSQL", "Python"}, skills)
}

func TestSkillExtractor_Grouped(t *testing.T) {
	e := NewSkillExtractor(nil)
	grouped := e.ExtractGrouped("Python and AWS with Docker")

	assert.Equal(t, []string{"Python"}, grouped["Programming Languages"])
	assert.Equal(t, []string{"AWS", "Docker"}, grouped["Cloud & DevOps"])
	assert.NotContains(t, grouped, "Databases")
}

func TestSkillExtractor_CustomVocabulary(t *testing.T) {
	vocab := MustVocabulary([]Category{{Label: "Frameworks", Keywords: []string{"Gin", "Echo"}}})
	e := NewSkillExtractor(vocab)
	assert.Equal(t, []string{"Gin"}, e.Extract("built with gin"))
}

func TestJobSkillExtractor_UsesJobTable(t *testing.T) {
	e := NewJobSkillExtractor()
	skills := e.Extract("Must know Python, Docker, Kubernetes, and React.")
	assert.Equal(t, []string{"Docker", "Kubernetes", "Python", "React"}, skills)
}

func TestSkillExtractor_EmptyText(t *testing.T) {
	e := NewSkillExtractor(nil)
	assert.Empty(t, e.Extract(""))
}

func TestLanguageExtractor_Defaults(t *testing.T) {
	e, err := NewLanguageExtractor(nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Arabic", "English", "French"}, e.Extract("English, French, Arabic"))
}

func TestLanguageExtractor_WholeWordOnly_Basic(t *testing.T) {
	e, err := NewLanguageExtractor(nil)
	assert.NoError(t, err)
	assert.Empty(t, e.Extract("a Frenchman in Germany"))
}

func TestLanguageExtractor_InvalidCustomList_Basic(t *testing.T) {
	_, err := NewLanguageExtractor([]string{"English", " "})
	assert.Error(t, err)
}
