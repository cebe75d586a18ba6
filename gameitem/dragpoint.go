package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// DragPoint is a control point of the outline of a wall, ramp, rubber,
// flasher, light or trigger. Drag points are stored as DPNT sub-streams
// within their item.
type DragPoint struct {
	Center         vpxtype.Vertex2D // VCEN
	Z              float32          // POSZ
	Smooth         bool             // SMTH
	IsSlingshot    *bool            // SLNG
	HasAutoTexture bool             // ATEX
	TexCoord       float32          // TEXC

	Editor

	Layout biff.Layout
}

func (p *DragPoint) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &p.Center),
		biff.F32("POSZ", &p.Z),
		biff.Bool("SMTH", &p.Smooth),
		biff.Optional("SLNG", &p.IsSlingshot, biff.Bool),
		biff.Bool("ATEX", &p.HasAutoTexture),
		biff.F32("TEXC", &p.TexCoord),
	}, p.Editor.fields()...)
}

func readDragPoint(r *biff.Reader) (DragPoint, error) {
	var p DragPoint
	c := r.Child()
	if err := biff.DecodeFields(c, p.fields(), &p.Layout); err != nil {
		return p, err
	}
	return p, r.Consume(c.Pos())
}

func writeDragPoint(w *biff.Writer, tag string, p DragPoint) {
	w.Child(tag, func(c *biff.Writer) {
		biff.EncodeFields(c, p.fields(), p.Layout)
	})
}
