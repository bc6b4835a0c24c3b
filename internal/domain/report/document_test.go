package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentContentType(t *testing.T) {
	docx := Document{Format: DocumentDOCX}
	contentType, err := docx.ContentType()
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", contentType)

	xlsx := Document{Format: DocumentXLSX}
	contentType, err = xlsx.ContentType()
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)

	_, err = Document{Format: "pdf"}.ContentType()
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestDocumentFilename(t *testing.T) {
	doc := Document{Format: DocumentXLSX}
	name, err := doc.Filename("2026-01-05", "2026-01-11")
	require.NoError(t, err)
	assert.Equal(t, "report_2026-01-05_2026-01-11.xlsx", name)

	_, err = Document{Format: "pdf"}.Filename("2026-01-05", "2026-01-11")
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}
