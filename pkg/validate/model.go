package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// Built-in defaults matching the document schema (meters).
const (
	defaultDoorWidth      = 0.9
	defaultDoorHeight     = 2.1
	defaultWindowWidth    = 1.5
	defaultWindowHeight   = 1.2
	defaultWindowSill     = 0.9
	defaultFloorHeight    = 2.8
	defaultSwingDirection = "inward"
)

// model is stage 2: construct the strongly-typed model from structurally
// valid data. Coercion failures and range violations are reported per field;
// one bad field never suppresses findings on its siblings.
func (p *Pipeline) model(doc map[string]any) (*domain.DesignSpec, domain.Diagnostics) {
	var spec domain.DesignSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &spec,
		TagName: "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			wholeFloatHook,
			coordinatePairHook,
		),
	})
	if err != nil {
		return nil, domain.Diagnostics{modelDiag("", err.Error())}
	}

	if err := dec.Decode(doc); err != nil {
		var diags domain.Diagnostics
		if merr, ok := err.(*mapstructure.Error); ok {
			for _, msg := range merr.Errors {
				diags = append(diags, modelDiag(pointerFromDecodeError(msg), msg))
			}
		} else {
			diags = append(diags, modelDiag("", err.Error()))
		}
		return nil, diags
	}

	applyDefaults(&spec)

	// Bound violations do not invalidate the typed model itself, so the
	// spec is still returned for per-room geometric checks.
	return &spec, p.bounds(&spec)
}

// bounds enforces the numeric range constraints declared on the model via
// struct tags (position in [0,1], minimum widths, and so on).
func (p *Pipeline) bounds(spec *domain.DesignSpec) domain.Diagnostics {
	if p.v == nil {
		p.v = newModelValidator()
	}
	err := p.v.Struct(spec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.Diagnostics{modelDiag("", err.Error())}
	}
	var diags domain.Diagnostics
	for _, fe := range verrs {
		msg := fmt.Sprintf("failed constraint %q", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed constraint %q (limit %s, got %v)", fe.Tag(), fe.Param(), fe.Value())
		}
		diags = append(diags, modelDiag(pointerFromNamespace(fe.Namespace()), msg))
	}
	return diags
}

func newModelValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// applyDefaults fills omitted optional values with the schema defaults,
// before the bound checks run.
func applyDefaults(spec *domain.DesignSpec) {
	for fi := range spec.Building.Floors {
		floor := &spec.Building.Floors[fi]
		if floor.Height == 0 {
			floor.Height = defaultFloorHeight
		}
		for ri := range floor.Rooms {
			room := &floor.Rooms[ri]
			for di := range room.Doors {
				d := &room.Doors[di]
				if d.Width == 0 {
					d.Width = defaultDoorWidth
				}
				if d.Height == 0 {
					d.Height = defaultDoorHeight
				}
				if d.Kind == "" {
					d.Kind = domain.DoorSingle
				}
				if d.Swing == "" {
					d.Swing = defaultSwingDirection
				}
			}
			for wi := range room.Windows {
				w := &room.Windows[wi]
				if w.Width == 0 {
					w.Width = defaultWindowWidth
				}
				if w.Height == 0 {
					w.Height = defaultWindowHeight
				}
				if w.SillHeight == 0 {
					w.SillHeight = defaultWindowSill
				}
				if w.Kind == "" {
					w.Kind = domain.WindowSliding
				}
			}
		}
	}
}

// wholeFloatHook converts whole-number floats into ints, since JSON decoding
// produces float64 for every number.
func wholeFloatHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 || to != reflect.Int {
		return data, nil
	}
	f := data.(float64)
	if f != float64(int64(f)) {
		return nil, fmt.Errorf("expected int, got float %v", f)
	}
	return int(f), nil
}

// coordinatePairHook converts a two-element numeric array into a
// geometry.Point, the shape polygon rings use.
func coordinatePairHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(geometry.Point{}) {
		return data, nil
	}
	if from.Kind() != reflect.Slice && from.Kind() != reflect.Array {
		return data, nil
	}
	rv := reflect.ValueOf(data)
	if rv.Len() != 2 {
		return nil, fmt.Errorf("expected [x, y] pair, got %d elements", rv.Len())
	}
	x, err := asFloat(rv.Index(0).Interface())
	if err != nil {
		return nil, fmt.Errorf("coordinate x: %w", err)
	}
	y, err := asFloat(rv.Index(1).Interface())
	if err != nil {
		return nil, fmt.Errorf("coordinate y: %w", err)
	}
	return geometry.Point{X: x, Y: y}, nil
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func modelDiag(path, message string) domain.Diagnostic {
	return domain.Diagnostic{
		Stage:    domain.StageModel,
		Path:     path,
		Message:  message,
		Severity: domain.SeverityError,
	}
}

var quotedFieldRe = regexp.MustCompile(`'([^']+)'`)

// pointerFromDecodeError extracts the quoted field path from a mapstructure
// error message ("building.floors[0].level") and rewrites it as a JSON
// pointer.
func pointerFromDecodeError(msg string) string {
	m := quotedFieldRe.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	return dottedToPointer(m[1])
}

// pointerFromNamespace rewrites a validator namespace
// ("DesignSpec.building.floors[0]...") as a JSON pointer, dropping the root
// struct name.
func pointerFromNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return dottedToPointer(ns)
}

func dottedToPointer(path string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, r := range path {
		switch r {
		case '.', '[':
			b.WriteByte('/')
		case ']':
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), "/")
}
