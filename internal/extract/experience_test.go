package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExperienceSection = `Experience
Software Engineer – OpenAI
2021 – Present
- Built RESTful APIs using FastAPI
- Collaborated on NLP models
Data Analyst – Acme Corp
2018 – 2021
- Maintained dashboards
Education:
Bachelor of Science, XYZ University`

func TestExperienceExtractor_ParsesEntries(t *testing.T) {
	e := NewExperienceExtractor()
	entries := e.Extract(sampleExperienceSection)
	require.Len(t, entries, 2)

	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Equal(t, "OpenAI", entries[0].Company)
	assert.Equal(t, "2021 – Present", entries[0].Date)
	assert.Equal(t, "- Built RESTful APIs using FastAPI - Collaborated on NLP models", entries[0].Description)

	assert.Equal(t, "Data Analyst", entries[1].Title)
	assert.Equal(t, "Acme Corp", entries[1].Company)
	assert.Equal(t, "2018 – 2021", entries[1].Date)
	assert.Equal(t, "- Maintained dashboards", entries[1].Description)
}

func TestExperienceExtractor_StopsAtNextSection(t *testing.T) {
	e := NewExperienceExtractor()
	entries := e.Extract(sampleExperienceSection)

	// The education line below the stop keyword must not leak into entries.
	for _, entry := range entries {
		assert.NotContains(t, entry.Raw, "Bachelor")
	}
}

func TestExperienceExtractor_NoSection(t *testing.T) {
	e := NewExperienceExtractor()
	assert.Empty(t, e.Extract("Skills: Python, Go"))
	assert.Empty(t, e.Extract(""))
}

func TestExperienceExtractor_WindowBound(t *testing.T) {
	e := &ExperienceExtractor{MaxLines: 2}
	entries := e.Extract(sampleExperienceSection)

	// Only the first title and date line fall inside the two-line window.
	require.Len(t, entries, 1)
	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Empty(t, entries[0].Description)
}

func TestExperienceExtractor_AlternateHeaders(t *testing.T) {
	e := NewExperienceExtractor()
	entries := e.Extract("Work History\nBackend Developer – StartupCo\n2020 – 2022")
	require.Len(t, entries, 1)
	assert.Equal(t, "Backend Developer", entries[0].Title)
	assert.Equal(t, "StartupCo", entries[0].Company)
}
