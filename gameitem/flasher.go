package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// Filter is the blend filter of a flasher.
type Filter uint32

const (
	FilterNone Filter = iota
	FilterAdditive
	FilterOverlay
	FilterMultiply
	FilterScreen
)

// Flasher is a textured, blended polygon used for light effects.
type Flasher struct {
	Height         float32       // FHEI
	PosX           float32       // FLAX
	PosY           float32       // FLAY
	RotX           float32       // FROX
	RotY           float32       // FROY
	RotZ           float32       // FROZ
	Color          vpxtype.Color // COLR
	TimerEnabled   bool          // TMON
	TimerInterval  int32         // TMIN
	ImageA         biff.String   // IMAG
	ImageB         biff.String   // IMAB
	Alpha          int32         // FALP
	ModulateVsAdd  float32       // MOVA
	IsVisible      bool          // FVIS
	DisplayTexture bool          // DSPT
	AddBlend       bool          // ADDB
	IsDMD          *bool         // IDMD
	DepthBias      float32       // FLDB
	ImageAlignment uint32        // ALGN
	Filter         uint32        // FILT
	FilterAmount   uint32        // FIAM
	LightMap       *biff.String  // LTNM

	DragPoints []DragPoint // DPNT

	Common
}

func NewFlasher() *Flasher {
	return &Flasher{
		Height:         50,
		Color:          vpxtype.RGB(255, 255, 255),
		TimerInterval:  100,
		Alpha:          100,
		ModulateVsAdd:  0.9,
		IsVisible:      true,
		ImageAlignment: 1,
		Filter:         uint32(FilterOverlay),
		FilterAmount:   100,
	}
}

func (*Flasher) Type() Type { return TypeFlasher }

func (l *Flasher) fields() []biff.Field {
	f := []biff.Field{
		biff.F32("FHEI", &l.Height),
		biff.F32("FLAX", &l.PosX),
		biff.F32("FLAY", &l.PosY),
		biff.F32("FROX", &l.RotX),
		biff.F32("FROY", &l.RotY),
		biff.F32("FROZ", &l.RotZ),
		color("COLR", &l.Color),
		biff.Bool("TMON", &l.TimerEnabled),
		biff.I32("TMIN", &l.TimerInterval),
		biff.Wide("NAME", &l.Name),
		biff.Str("IMAG", &l.ImageA),
		biff.Str("IMAB", &l.ImageB),
		biff.I32("FALP", &l.Alpha),
		biff.F32("MOVA", &l.ModulateVsAdd),
		biff.Bool("FVIS", &l.IsVisible),
		biff.Bool("DSPT", &l.DisplayTexture),
		biff.Bool("ADDB", &l.AddBlend),
		biff.Optional("IDMD", &l.IsDMD, biff.Bool),
		biff.F32("FLDB", &l.DepthBias),
		biff.U32("ALGN", &l.ImageAlignment),
		biff.U32("FILT", &l.Filter),
		biff.U32("FIAM", &l.FilterAmount),
		biff.Optional("LTNM", &l.LightMap, biff.Str),
	}
	f = append(f, l.Editor.fields()...)
	return append(f, dragPoints(&l.DragPoints))
}
