package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrEmptyDocument is returned when a document decodes to no extractable
// text, e.g. a scanned-image PDF.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// UnsupportedFormatError is returned for file extensions other than
// .pdf, .docx and .txt.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (want .pdf, .docx or .txt)", e.Ext)
}

// ExtractDocumentText decodes a document into raw text, dispatching on the
// filename extension. An extension-less name is treated as plain text.
func ExtractDocumentText(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt", "":
		text = string(data)
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", filename, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", filename, ErrEmptyDocument)
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

var (
	docxParagraphPattern = regexp.MustCompile(`</w:p>`)
	docxTagPattern       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns the document XML; paragraph ends become newlines
	// and remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = docxParagraphPattern.ReplaceAllString(content, "\n")
	return docxTagPattern.ReplaceAllString(content, ""), nil
}
