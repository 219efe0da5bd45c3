package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText recovers the plain text of a PDF document. Extraction is
// best-effort by contract: partial text is success, no text is an error.
func extractPDFText(raw []byte) (text string, err error) {
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		return "", fmt.Errorf("not a PDF document")
	}

	// The reader panics on malformed cross-reference tables and object
	// streams rather than returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text = strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text recovered from PDF document")
	}
	return text, nil
}
