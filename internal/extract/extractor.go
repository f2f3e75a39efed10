package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"smartjob-utils/pkg/models"
)

var (
	// ErrUnsupportedFormat is returned when the requested document format
	// has no registered extractor.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument is returned when the payload does not parse as the
	// declared format.
	ErrCorruptDocument = errors.New("corrupt or unreadable document")
)

// NormalizeFormat maps user-supplied format names onto the canonical set.
// Unrecognized names are returned unchanged so the dispatch can reject them.
func NormalizeFormat(format string) models.DocumentFormat {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "pdf":
		return models.FormatPDF
	case "docx":
		return models.FormatDOCX
	case "plain-text", "txt", "text":
		return models.FormatPlainText
	default:
		return models.DocumentFormat(format)
	}
}

// Extract pulls the text content out of a resume document. The raw bytes are
// never modified. Returns ErrUnsupportedFormat for unknown formats and
// ErrCorruptDocument when the bytes do not parse as the declared format.
func Extract(data []byte, format string) (string, error) {
	switch NormalizeFormat(format) {
	case models.FormatPDF:
		return extractPDF(data)
	case models.FormatDOCX:
		return extractDOCX(data)
	case models.FormatPlainText:
		return extractPlainText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ExtractDocument extracts text from a resume document and returns a copy
// with ExtractedText populated. The input document is never mutated; extracted
// text is immutable once set.
func ExtractDocument(doc models.ResumeDocument) (models.ResumeDocument, error) {
	text, err := Extract(doc.Data, string(doc.Format))
	if err != nil {
		return models.ResumeDocument{}, err
	}

	doc.Format = NormalizeFormat(string(doc.Format))
	doc.ExtractedText = text
	return doc, nil
}

// extractPlainText validates the payload as UTF-8 and returns it verbatim.
func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid UTF-8 in plain text document", ErrCorruptDocument)
	}
	return string(data), nil
}
