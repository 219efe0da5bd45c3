package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	interiorSpaces = regexp.MustCompile(`\s+`)
	excessBlanks   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes whitespace while preserving document structure:
// line endings become LF, interior runs of spaces collapse, bullet
// indentation survives, and runs of blank lines shrink to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := interiorSpaces.ReplaceAllString(strings.TrimSpace(trimmed), " ")

	// Bullets keep their indentation so section structure stays readable.
	if indent > 0 && isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(line string) bool {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// IngestFromFile loads a resume or job description from disk, extracting
// text according to the file extension and cleaning it.
func IngestFromFile(path string) (string, *Metadata, error) {
	kind, err := KindFromPath(path)
	if err != nil {
		return "", nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := Load(raw, kind)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, ""), nil
}
