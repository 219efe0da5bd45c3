// Package types provides type definitions for structured data used throughout the tailoring system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentRole identifies which side of the match a document is on.
type DocumentRole string

// Document roles
const (
	// RoleCandidate is the document being tailored (the resume).
	RoleCandidate DocumentRole = "candidate"
	// RoleTarget is the document being tailored against (the job description).
	RoleTarget DocumentRole = "target"
)

// Document is an immutable text blob with a logical role.
// Re-scoring always creates a new Document rather than mutating one.
type Document struct {
	Text string       `json:"text"`
	Role DocumentRole `json:"role"`
}

// NewCandidate creates a candidate-role document.
func NewCandidate(text string) Document {
	return Document{Text: text, Role: RoleCandidate}
}

// NewTarget creates a target-role document.
func NewTarget(text string) Document {
	return Document{Text: text, Role: RoleTarget}
}
