package planform

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/planform/planform/pkg/analysis"
	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/drawing"
	"github.com/planform/planform/pkg/validate"
)

// Engine is the high-level entry point for the Planform library.
// It wraps the validation pipeline and drawing generator and provides a
// simplified API for consumers. Engines are cheap and safe to share; every
// call operates on its own document.
type Engine struct {
	pipeline *validate.Pipeline
	drawOpts drawing.Options
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithWallThickness sets the full wall thickness in meters.
func WithWallThickness(thickness float64) Option {
	return func(e *Engine) {
		e.drawOpts.WallThickness = thickness
	}
}

// WithTolerance sets the geometric epsilon used by validation and the
// generator precondition.
func WithTolerance(tolerance float64) Option {
	return func(e *Engine) {
		e.pipeline = validate.New(tolerance)
		e.drawOpts.Tolerance = tolerance
	}
}

// WithDrawingOptions replaces every drawing default at once.
func WithDrawingOptions(opts drawing.Options) Option {
	return func(e *Engine) {
		e.drawOpts = opts
	}
}

// WithLogger sets the logger used for run-level diagnostics. The core
// subsystems themselves never log; the engine logs at its boundaries.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the documented defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		pipeline: validate.New(0),
		drawOpts: drawing.DefaultOptions(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs the full three-stage pipeline over raw JSON or YAML bytes
// and returns every diagnostic. The error is non-nil only for the fatal
// unparsable-document case.
func (e *Engine) Validate(raw []byte) (domain.Diagnostics, error) {
	_, diags, err := e.pipeline.Run(raw)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("validation finished", "diagnostics", len(diags))
	return diags, nil
}

// Load validates raw bytes and returns the typed specification when stages
// 1 and 2 passed, together with all diagnostics.
func (e *Engine) Load(raw []byte) (*domain.DesignSpec, domain.Diagnostics, error) {
	return e.pipeline.Run(raw)
}

// Generate validates raw bytes and renders the requested floor. Any error
// diagnostic makes generation fail; partial drawings are never returned.
func (e *Engine) Generate(raw []byte, floorLevel int) (*domain.Drawing, domain.Diagnostics, error) {
	spec, diags, err := e.pipeline.Run(raw)
	if err != nil {
		return nil, nil, err
	}
	if spec == nil || diags.HasErrors() {
		return nil, diags, fmt.Errorf("document failed validation with %d diagnostics", len(diags))
	}

	doc, err := drawing.Generate(spec, floorLevel, e.drawOpts)
	if err != nil {
		return nil, diags, err
	}
	e.logger.Info("drawing generated",
		"project", spec.ProjectInfo.Name,
		"level", floorLevel,
		"entities", doc.EntityCount())
	return doc, diags, nil
}

// GenerateSpec renders a floor from an already-validated specification.
func (e *Engine) GenerateSpec(spec *domain.DesignSpec, floorLevel int) (*domain.Drawing, error) {
	return drawing.Generate(spec, floorLevel, e.drawOpts)
}

// Analyze validates raw bytes and measures the requested floor.
func (e *Engine) Analyze(raw []byte, floorLevel int) (*analysis.FloorReport, domain.Diagnostics, error) {
	spec, diags, err := e.pipeline.Run(raw)
	if err != nil {
		return nil, nil, err
	}
	if spec == nil || diags.HasErrors() {
		return nil, diags, fmt.Errorf("document failed validation with %d diagnostics", len(diags))
	}
	report, err := analysis.AnalyzeFloor(spec, floorLevel)
	if err != nil {
		return nil, diags, err
	}
	return report, diags, nil
}
