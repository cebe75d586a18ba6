package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// DecalType selects whether a decal shows text or an image.
type DecalType uint32

const (
	DecalText  DecalType = 0
	DecalImage DecalType = 1
)

// Decal is an image or a piece of text laid on a surface.
type Decal struct {
	Center       vpxtype.Vertex2D // VCEN
	Width        float32          // WDTH
	Height       float32          // HIGH
	Rotation     float32          // ROTA
	Image        biff.String      // IMAG
	Surface      biff.String      // SURF
	Text         biff.String      // TEXT
	DecalType    uint32           // TYPE
	Material     biff.String      // MATR
	Color        vpxtype.Color    // COLR
	SizingType   uint32           // SIZE
	VerticalText bool             // VERT
	Backglass    bool             // BGLS
	Font         vpxtype.Font     // FONT

	Common
}

func NewDecal() *Decal {
	return &Decal{
		Width:     100,
		Height:    100,
		DecalType: uint32(DecalImage),
		Font:      vpxtype.DefaultFont,
	}
}

func (*Decal) Type() Type { return TypeDecal }

func (d *Decal) fields() []biff.Field {
	f := []biff.Field{
		vertex2D("VCEN", &d.Center),
		biff.F32("WDTH", &d.Width),
		biff.F32("HIGH", &d.Height),
		biff.F32("ROTA", &d.Rotation),
		biff.Str("IMAG", &d.Image),
		biff.Str("SURF", &d.Surface),
		biff.Wide("NAME", &d.Name),
		biff.Str("TEXT", &d.Text),
		biff.U32("TYPE", &d.DecalType),
		biff.Str("MATR", &d.Material),
		color("COLR", &d.Color),
		biff.U32("SIZE", &d.SizingType),
		biff.Bool("VERT", &d.VerticalText),
		biff.Bool("BGLS", &d.Backglass),
	}
	f = append(f, d.Editor.fields()...)
	return append(f, font("FONT", &d.Font))
}
