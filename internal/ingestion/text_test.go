package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	got := CleanText("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", got)
}

func TestCleanText_CollapsesInteriorSpaces(t *testing.T) {
	got := CleanText("Senior   Data\tEngineer")
	assert.Equal(t, "Senior Data Engineer", got)
}

func TestCleanText_PreservesBulletIndentation(t *testing.T) {
	got := CleanText("Experience\n  - Built    pipelines\n  - Ran jobs")
	assert.Equal(t, "Experience\n  - Built pipelines\n  - Ran jobs", got)
}

func TestCleanText_LimitsBlankLines(t *testing.T) {
	got := CleanText("Summary\n\n\n\n\nExperience")
	assert.Equal(t, "Summary\n\nExperience", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n\t\n  "))
}

func TestIngestFromFile_TXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\r\n\r\n\r\n\r\nExperience"), 0644))

	text, metadata, err := IngestFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\n\nExperience", text)
	require.NotNil(t, metadata)
	assert.NotEmpty(t, metadata.ID)
	assert.Equal(t, 3, metadata.WordCount)
	assert.Empty(t, metadata.Source)
}

func TestIngestFromFile_UnsupportedExtension(t *testing.T) {
	_, _, err := IngestFromFile("resume.rtf")

	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorContains(t, err, "file not found")
}

func TestMetadata_HashIsStable(t *testing.T) {
	a := NewMetadata("same content", "")
	b := NewMetadata("same content", "")
	c := NewMetadata("different content", "")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMetadata_ToJSON(t *testing.T) {
	m := NewMetadata("content here", "https://example.com/job")
	m.Board = "greenhouse"

	data, err := m.ToJSON()

	require.NoError(t, err)
	assert.Contains(t, string(data), `"source": "https://example.com/job"`)
	assert.Contains(t, string(data), `"board": "greenhouse"`)
}
