package domain

import (
	"errors"
	"fmt"
)

// ErrFloorNotFound is returned when generation targets a level the
// specification does not contain.
var ErrFloorNotFound = errors.New("floor level not found in specification")

// SchemaError signals a document that cannot even be parsed into key/value
// form. It is fatal and short-circuits the remaining validation stages.
type SchemaError struct {
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("document is not parseable: %v", e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// GeometryError signals a violated geometric invariant. Validation records
// these as diagnostics; generation fails with the first one if any are
// present when it is invoked.
type GeometryError struct {
	Path   string
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
