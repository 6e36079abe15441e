/*
Package drawing turns a validated floor into a layered drawing document.

Generation is a pure transform: given the same validated specification,
floor level and options, it emits the exact same ordered entity list, so
output is diffable and reproducible across runs. Emission order is fixed as
room-index-major, then walls, doors, windows, furniture and the room label
within a room, with a static title block after all rooms.

Walls are drawn as two boundary polylines per room, offset half the wall
thickness to each side of the polygon edges and chained with miter joins.
Door and window spans cut gaps into both boundaries; gaps are capped with
short jamb segments, doors get a quarter-circle swing arc and windows get
sill marks.

Generate refuses to run unless the geometric-semantic validation stage is
clean, returning a single GeometryError naming the first violated invariant.
Partial drawings are never produced.
*/
package drawing
