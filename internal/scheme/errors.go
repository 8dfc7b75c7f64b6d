package scheme

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrMissingField indicates a required top-level field is absent
	ErrMissingField = errors.New("missing required field")
)

// DocumentStructureError reports a required document field that is missing
// or of the wrong shape. It is fatal: no theme is produced for the document.
type DocumentStructureError struct {
	Field string
}

func (e *DocumentStructureError) Error() string {
	return fmt.Sprintf("color scheme is missing required field %q", e.Field)
}

func (e *DocumentStructureError) Unwrap() error {
	return ErrMissingField
}

// NewDocumentStructureError creates a new document structure error
func NewDocumentStructureError(field string) error {
	return &DocumentStructureError{Field: field}
}
