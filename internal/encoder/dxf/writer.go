// Package dxf encodes a drawing document as an ASCII DXF (R12) file. It is
// the external-encoding collaborator of the core: a lossless translation of
// the format-agnostic entity primitives, with no geometry of its own.
package dxf

import (
	"bufio"
	"io"
	"strconv"

	"github.com/planform/planform/pkg/domain"
)

// layerColors maps the canonical layers onto AutoCAD color indices.
var layerColors = map[domain.Layer]int{
	domain.LayerWall:       7,
	domain.LayerDoor:       3,
	domain.LayerWindow:     4,
	domain.LayerFurniture:  8,
	domain.LayerDimension:  1,
	domain.LayerText:       2,
	domain.LayerCenterline: 5,
}

// Encode writes the drawing to w as an ASCII DXF document. Entity order
// follows the drawing's canonical layer walk, so identical drawings encode
// to identical bytes.
func Encode(d *domain.Drawing, w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw}

	enc.tag(0, "SECTION")
	enc.tag(2, "TABLES")
	enc.tag(0, "TABLE")
	enc.tag(2, "LAYER")
	enc.tag(70, strconv.Itoa(len(domain.Layers)))
	for _, layer := range domain.Layers {
		enc.tag(0, "LAYER")
		enc.tag(2, string(layer))
		enc.tag(70, "0")
		enc.tag(62, strconv.Itoa(layerColors[layer]))
		enc.tag(6, "CONTINUOUS")
	}
	enc.tag(0, "ENDTAB")
	enc.tag(0, "ENDSEC")

	enc.tag(0, "SECTION")
	enc.tag(2, "ENTITIES")
	d.Walk(func(layer domain.Layer, e domain.Entity) {
		enc.entity(layer, e)
	})
	enc.tag(0, "ENDSEC")
	enc.tag(0, "EOF")

	if enc.err != nil {
		return enc.err
	}
	return bw.Flush()
}

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) tag(code int, value string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(strconv.Itoa(code) + "\n" + value + "\n")
}

func (e *encoder) float(code int, v float64) {
	e.tag(code, strconv.FormatFloat(v, 'f', -1, 64))
}

func (e *encoder) entity(layer domain.Layer, ent domain.Entity) {
	switch v := ent.(type) {
	case domain.Line:
		e.tag(0, "LINE")
		e.tag(8, string(layer))
		e.float(10, v.Start.X)
		e.float(20, v.Start.Y)
		e.float(11, v.End.X)
		e.float(21, v.End.Y)
	case domain.Polyline:
		e.tag(0, "POLYLINE")
		e.tag(8, string(layer))
		e.tag(66, "1")
		if v.Closed {
			e.tag(70, "1")
		} else {
			e.tag(70, "0")
		}
		for _, p := range v.Points {
			e.tag(0, "VERTEX")
			e.tag(8, string(layer))
			e.float(10, p.X)
			e.float(20, p.Y)
		}
		e.tag(0, "SEQEND")
	case domain.Arc:
		e.tag(0, "ARC")
		e.tag(8, string(layer))
		e.float(10, v.Center.X)
		e.float(20, v.Center.Y)
		e.float(40, v.Radius)
		e.float(50, v.StartAngle)
		e.float(51, v.EndAngle)
	case domain.Text:
		e.tag(0, "TEXT")
		e.tag(8, string(layer))
		e.float(10, v.Position.X)
		e.float(20, v.Position.Y)
		e.float(40, v.Height)
		e.tag(1, v.Value)
	}
}
