package extract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDF renders each page of the PDF to text and joins the pages with
// newlines.
func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	var pages []string
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read page %d: %v", ErrCorruptDocument, n+1, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
