package models

// DocumentFormat identifies the declared format of an uploaded resume document
type DocumentFormat string

const (
	FormatPDF       DocumentFormat = "pdf"
	FormatDOCX      DocumentFormat = "docx"
	FormatPlainText DocumentFormat = "plain-text"
)

// ResumeDocument holds an uploaded resume as an opaque byte blob with its
// declared format. ExtractedText is populated exactly once by the text
// extractor; a re-upload creates a new ResumeDocument rather than mutating
// the old one.
type ResumeDocument struct {
	Format        DocumentFormat `json:"format"`
	Data          []byte         `json:"-"`
	ExtractedText string         `json:"extracted_text,omitempty"`
}
