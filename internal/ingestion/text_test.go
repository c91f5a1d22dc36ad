package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesBullets(t *testing.T) {
	input := "• First item\n● Second item\n- Third item"
	result := CleanText(input)

	assert.Contains(t, result, "- First item")
	assert.Contains(t, result, "- Second item")
	assert.Contains(t, result, "- Third item")
}

func TestCleanText_CanonicalizesSectionHeaders(t *testing.T) {
	input := "SKILLS\nPython, Go\nwork experience\nEducation:"
	result := CleanText(input)

	assert.Contains(t, result, "Skills:\n")
	assert.Contains(t, result, "Education:")
	// Header names inside longer lines are left alone.
	assert.Contains(t, result, "work experience")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ")
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.NotContains(t, result, "\n\n\n\n")
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"

	first := CleanText(input)
	second := CleanText(input)
	assert.Equal(t, first, second)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  \n"))
}

func TestIngestFromFile_TextFile(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "resume.txt")
	testContent := "John Doe\n\nSKILLS\n• Python\n• Go\n\nEducation\nBachelor of Science, 2020"
	err := os.WriteFile(testFile, []byte(testContent), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Skills:")
	assert.Contains(t, cleanedText, "- Python")
	assert.Contains(t, cleanedText, "Education:")
	require.NotNil(t, metadata)
	assert.Equal(t, testFile, metadata.Source)
	assert.NotEmpty(t, metadata.Hash)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_EmptyDocument(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("   \n \n"), 0644))

	_, _, err := IngestFromFile(testFile)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
