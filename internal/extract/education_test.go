package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationExtractor_DegreeInstitutionYear(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)

	entries := e.Extract("Bachelor of Science in Computer Science, XYZ University, 2020")
	require.Len(t, entries, 1)

	assert.Equal(t, "Bachelor", entries[0].Degree)
	assert.Equal(t, "of Science in Computer Science, XYZ University", entries[0].Institution)
	assert.Equal(t, "2020", entries[0].Year)
	assert.Equal(t, "Bachelor of Science in Computer Science, XYZ University, 2020", entries[0].Raw)
}

func TestEducationExtractor_MonthYear(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)

	entries := e.Extract("MBA, ABC Business School, May 2022")
	require.Len(t, entries, 1)
	assert.Equal(t, "MBA", entries[0].Degree)
	assert.Equal(t, "2022", entries[0].Year)
}

func TestEducationExtractor_NoYear(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)

	entries := e.Extract("Master of Arts, Open University")
	require.Len(t, entries, 1)
	assert.Equal(t, "Master", entries[0].Degree)
	assert.Equal(t, "of Arts, Open University", entries[0].Institution)
	assert.Empty(t, entries[0].Year)
}

func TestEducationExtractor_OneEntryPerLine(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)

	// "Bachelor" appears before "Master" in the degree table; only the first
	// qualifying degree produces an entry for the line.
	entries := e.Extract("Bachelor and Master studies, 2019")
	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor", entries[0].Degree)
}

func TestEducationExtractor_MultipleLines(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)

	text := "Education:\n- Bachelor of Science, XYZ University, 2020\n- MBA, ABC Business School, May 2022"
	entries := e.Extract(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bachelor", entries[0].Degree)
	assert.Equal(t, "MBA", entries[1].Degree)
}

func TestEducationExtractor_NoMatch(t *testing.T) {
	e, err := NewEducationExtractor(nil)
	require.NoError(t, err)
	assert.Empty(t, e.Extract("no study history"))
	assert.Empty(t, e.Extract(""))
}

func TestEducationExtractor_InvalidCustomList(t *testing.T) {
	_, err := NewEducationExtractor([]string{"Bachelor", ""})
	assert.Error(t, err)
}
