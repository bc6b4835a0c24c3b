package report

import "fmt"

// DocumentFormat distinguishes the two document kinds the renderer
// produces. Anything else is rejected by the classifier.
type DocumentFormat string

const (
	DocumentDOCX DocumentFormat = "docx"
	DocumentXLSX DocumentFormat = "xlsx"
)

// Document is an opaque rendered report, ready to stream.
type Document struct {
	Format  DocumentFormat
	Content []byte
}

// ContentType classifies the document into a MIME type.
func (d Document) ContentType() (string, error) {
	switch d.Format {
	case DocumentDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case DocumentXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocument, d.Format)
	}
}

// Filename builds the download name for a report covering [start, end].
func (d Document) Filename(start, end string) (string, error) {
	switch d.Format {
	case DocumentDOCX, DocumentXLSX:
		return fmt.Sprintf("report_%s_%s.%s", start, end, d.Format), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocument, d.Format)
	}
}
