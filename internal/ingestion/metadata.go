package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Metadata describes one ingested document.
type Metadata struct {
	ID        string `json:"id"`
	Source    string `json:"source,omitempty"` // URL or empty for local files
	Board     string `json:"board,omitempty"`  // Detected job board platform
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	WordCount int    `json:"word_count"`
}

// NewMetadata creates Metadata for a cleaned document.
func NewMetadata(content, source string) *Metadata {
	hash := sha256.Sum256([]byte(content))
	return &Metadata{
		ID:        uuid.NewString(),
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(hash[:]),
		WordCount: len(strings.Fields(content)),
	}
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
