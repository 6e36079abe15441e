package domain

import "fmt"

// Stage identifies which validation stage produced a diagnostic.
type Stage string

const (
	StageStructural Stage = "structural"
	StageModel      Stage = "model"
	StageGeometry   Stage = "geometry"
)

// Severity ranks a diagnostic. Every invariant violation is an error;
// warnings are reserved for findings callers may choose to tolerate.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single validation finding. Path is a JSON-pointer-style
// location inside the raw document (e.g. /building/floors/0/rooms/2/doors/0).
type Diagnostic struct {
	Stage    Stage    `json:"stage"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Stage, d.Path, d.Message)
}

// Diagnostics is an ordered finding list. An empty list means the document
// is fully valid at all three stages.
type Diagnostics []Diagnostic

// HasErrors reports whether any finding carries error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Stage filters the list down to a single stage, preserving order.
func (ds Diagnostics) Stage(s Stage) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Stage == s {
			out = append(out, d)
		}
	}
	return out
}
