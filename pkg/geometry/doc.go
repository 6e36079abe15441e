/*
Package geometry provides the stateless computational primitives the rest of
Planform is built on: polygon measures (area, perimeter, centroid), point
placement, perpendicular edge offsets with miter-join resolution, rotation,
simplification and intersection tests.

All functions operate on plain values and hold no state. They are total for
well-formed input (non-degenerate polygons with at least three distinct
vertices) and use an explicit epsilon tolerance instead of exact float
comparison, so near-axis-aligned and near-zero-length edges behave predictably.

The package knows nothing about rooms, walls or drawings. Domain meaning is
layered on top by pkg/validate and pkg/drawing.
*/
package geometry
