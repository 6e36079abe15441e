package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// Pipeline runs the three validation stages in order. It carries only
// configuration; every run operates on its own document and the zero-config
// instance is usable.
type Pipeline struct {
	// Tolerance is the epsilon used by the geometric-semantic stage.
	Tolerance float64

	v *validator.Validate
}

// New returns a pipeline with the given geometric tolerance. A zero or
// negative tolerance falls back to geometry.Epsilon.
func New(tolerance float64) *Pipeline {
	if tolerance <= 0 {
		tolerance = geometry.Epsilon
	}
	return &Pipeline{Tolerance: tolerance, v: newModelValidator()}
}

// Parse decodes raw JSON or YAML bytes into key/value form. A document that
// fails both decoders is a fatal *domain.SchemaError.
func Parse(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &domain.SchemaError{Cause: fmt.Errorf("empty document")}
	}

	var doc map[string]any
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &domain.SchemaError{Cause: err}
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, &domain.SchemaError{Cause: err}
	}
	return doc, nil
}

// Run validates raw document bytes through all three stages.
//
// The returned diagnostics always cover every stage that ran; spec is
// non-nil only when stages 1 and 2 both passed without errors. The error is
// non-nil only for the fatal unparsable-document case.
func (p *Pipeline) Run(raw []byte) (*domain.DesignSpec, domain.Diagnostics, error) {
	doc, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	spec, diags := p.RunDocument(doc)
	return spec, diags, nil
}

// RunDocument validates an already-decoded document through all three
// stages. The model stage only runs on structurally valid data. The
// geometry stage runs over every room that modeled cleanly, skipping rooms
// with model errors, so one bad room never hides geometric findings in its
// siblings. Spec is non-nil only when stages 1 and 2 both passed.
func (p *Pipeline) RunDocument(doc map[string]any) (*domain.DesignSpec, domain.Diagnostics) {
	diags := p.structural(doc)
	if diags.HasErrors() {
		return nil, diags
	}

	spec, modelDiags := p.model(doc)
	diags = append(diags, modelDiags...)
	if spec == nil {
		return nil, diags
	}
	if modelDiags.HasErrors() {
		diags = append(diags, p.semanticSkipping(spec, flaggedRooms(modelDiags))...)
		return nil, diags
	}

	diags = append(diags, p.semantic(spec)...)
	return spec, diags
}

var roomPathRe = regexp.MustCompile(`^/building/floors/\d+/rooms/\d+`)

// flaggedRooms maps model diagnostics back to the room paths they belong
// to. Diagnostics outside any room, such as floor height bounds, do not
// block geometric checks.
func flaggedRooms(diags domain.Diagnostics) map[string]bool {
	flagged := make(map[string]bool)
	for _, d := range diags {
		if m := roomPathRe.FindString(d.Path); m != "" {
			flagged[m] = true
		}
	}
	return flagged
}
