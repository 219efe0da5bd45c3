// Package ingestion turns resumes and job postings from files, uploads, and
// URLs into clean plain text.
package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document format.
type Kind string

const (
	// KindTXT is plain UTF-8 text
	KindTXT Kind = "txt"
	// KindDOCX is an Office Open XML word document
	KindDOCX Kind = "docx"
	// KindPDF is a PDF document
	KindPDF Kind = "pdf"
)

// UnsupportedFormatError is returned for formats Load cannot handle.
type UnsupportedFormatError struct {
	Kind string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Kind)
}

// KindFromPath derives the document kind from a file extension.
func KindFromPath(path string) (Kind, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Kind(ext) {
	case KindTXT, KindDOCX, KindPDF:
		return Kind(ext), nil
	default:
		return "", &UnsupportedFormatError{Kind: ext}
	}
}

// Load extracts plain text from raw file bytes. Extraction is best-effort:
// malformed documents yield whatever text could be recovered rather than
// failing outright, and only a document with no recoverable text at all
// produces an error.
func Load(raw []byte, kind Kind) (string, error) {
	switch kind {
	case KindTXT:
		return string(raw), nil
	case KindDOCX:
		return extractDocxText(raw)
	case KindPDF:
		return extractPDFText(raw)
	default:
		return "", &UnsupportedFormatError{Kind: string(kind)}
	}
}
