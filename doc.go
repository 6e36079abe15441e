/*
Package planform turns structured architectural design documents into
layered 2D vector drawings.

The library is a thin facade over three pure subsystems: pkg/geometry
(computational primitives), pkg/validate (the three-stage validation
pipeline) and pkg/drawing (deterministic drawing generation). The Engine
type wires them together with explicit configuration; there are no global
defaults and no shared state between calls.

	eng := planform.New(planform.WithWallThickness(0.2))

	diags, err := eng.Validate(raw)
	doc, diags, err := eng.Generate(raw, 1)

Adapters under pkg/adapters expose the same operations over MCP and HTTP,
and cmd/planform wraps them in a CLI.
*/
package planform
