/*
Package domain contains the core data model for Planform.

It defines the typed design specification (DesignSpec, Floor, Room, Polygon,
Door, Window, Furniture), the drawing document produced by generation
(Drawing plus the Line/Polyline/Arc/Text entity primitives), validation
diagnostics, and the error kinds shared across the pipeline.

The package is kept free of I/O and of geometry algorithms; it only imports
pkg/geometry for the Point value type. The typed model only ever exists after
the validation pipeline has constructed it from a raw document, and is never
mutated afterwards: generation is a pure transform over it.

# Key Entities

  - DesignSpec: the root document, constructed once per validation run.
  - Room: a named polygon boundary that exclusively owns its openings and
    furniture.
  - Drawing: a write-once mapping from layer names to ordered entity slices.
  - Diagnostic: one validation finding with stage, JSON-pointer path,
    message and severity.
*/
package domain
