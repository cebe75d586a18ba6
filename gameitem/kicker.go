package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// KickerType selects the mesh of a kicker.
type KickerType uint32

const (
	KickerInvisible KickerType = iota
	KickerHole
	KickerCup
	KickerHoleSimple
	KickerWilliams
	KickerGottlieb
	KickerCup2
)

type Kicker struct {
	Center        vpxtype.Vertex2D // VCEN
	Radius        float32          // RADI
	TimerEnabled  bool             // TMON
	TimerInterval int32            // TMIN
	Material      biff.String      // MATR
	Surface       biff.String      // SURF
	IsEnabled     bool             // EBLD
	KickerType    uint32           // TYPE
	Scatter       float32          // KSCT
	HitAccuracy   float32          // KHAC
	HitHeight     *float32         // KHHI
	Orientation   float32          // KORI
	FallThrough   bool             // FATH
	LegacyMode    *bool            // LEMO

	Common
}

func NewKicker() *Kicker {
	return &Kicker{
		Radius:        25,
		TimerInterval: 100,
		IsEnabled:     true,
		KickerType:    uint32(KickerHole),
		HitAccuracy:   0.7,
	}
}

func (*Kicker) Type() Type { return TypeKicker }

func (k *Kicker) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &k.Center),
		biff.F32("RADI", &k.Radius),
		biff.Bool("TMON", &k.TimerEnabled),
		biff.I32("TMIN", &k.TimerInterval),
		biff.Str("MATR", &k.Material),
		biff.Str("SURF", &k.Surface),
		biff.Bool("EBLD", &k.IsEnabled),
		biff.Wide("NAME", &k.Name),
		biff.U32("TYPE", &k.KickerType),
		biff.F32("KSCT", &k.Scatter),
		biff.F32("KHAC", &k.HitAccuracy),
		biff.Optional("KHHI", &k.HitHeight, biff.F32),
		biff.F32("KORI", &k.Orientation),
		biff.Bool("FATH", &k.FallThrough),
		biff.Optional("LEMO", &k.LegacyMode, biff.Bool),
	}, k.Editor.fields()...)
}
