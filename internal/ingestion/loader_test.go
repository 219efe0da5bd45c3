package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>
<w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Data Engineer</w:t></w:r></w:p>
</w:body>
</w:document>`

func TestLoad_TXT(t *testing.T) {
	text, err := Load([]byte("plain resume text"), KindTXT)

	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestLoad_DOCX(t *testing.T) {
	raw := buildDocx(t, sampleDocumentXML)

	text, err := Load(raw, KindDOCX)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nSenior Data Engineer", text)
}

func TestLoad_DOCX_NotAnArchive(t *testing.T) {
	_, err := Load([]byte("definitely not a zip"), KindDOCX)
	assert.Error(t, err)
}

func TestLoad_DOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<styles/>"))
	require.NoError(t, zw.Close())

	_, err = Load(buf.Bytes(), KindDOCX)
	assert.Error(t, err)
}

// buildPDF assembles a minimal one-page PDF showing the given text, with a
// correct cross-reference table computed from the actual object offsets.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, object := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, object)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	return buf.Bytes()
}

func TestLoad_PDF(t *testing.T) {
	raw := buildPDF(t, "Senior data engineer")

	text, err := Load(raw, KindPDF)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior data engineer")
}

func TestLoad_PDF_NotAPDF(t *testing.T) {
	_, err := Load([]byte("hello"), KindPDF)
	assert.Error(t, err)
}

func TestLoad_PDF_Malformed(t *testing.T) {
	// A PDF header followed by garbage must yield an error, not a panic.
	_, err := Load([]byte("%PDF-1.4\nno objects or xref here"), KindPDF)
	assert.Error(t, err)
}

func TestLoad_UnsupportedKind(t *testing.T) {
	_, err := Load([]byte("x"), Kind("rtf"))

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "rtf", unsupported.Kind)
}

func TestKindFromPath(t *testing.T) {
	for path, want := range map[string]Kind{
		"resume.txt":       KindTXT,
		"resume.DOCX":      KindDOCX,
		"/tmp/resume.pdf":  KindPDF,
		"dir.v2/notes.TXT": KindTXT,
	} {
		kind, err := KindFromPath(path)
		require.NoError(t, err, "path %s", path)
		assert.Equal(t, want, kind, "path %s", path)
	}

	_, err := KindFromPath("resume.rtf")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}
