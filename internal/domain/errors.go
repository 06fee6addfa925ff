package domain

import "fmt"

// InvalidDocumentError reports a document whose root node is absent or
// malformed. No partial report is produced; the audit fully fails.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document: %s", e.Reason)
}

// StructuralError reports a document tree whose depth exceeds the configured
// safety bound, which guards against cyclic or pathological input.
type StructuralError struct {
	Depth    int
	MaxDepth int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("document tree exceeds maximum depth %d", e.MaxDepth)
}
