package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

type Spinner struct {
	Center              vpxtype.Vertex2D // VCEN
	Rotation            float32          // ROTA
	Material            biff.String      // MATR
	TimerEnabled        bool             // TMON
	TimerInterval       int32            // TMIN
	Height              float32          // HIGH
	Length              float32          // LGTH
	Damping             float32          // AFRC
	AngleMax            float32          // SMAX
	AngleMin            float32          // SMIN
	Elasticity          float32          // SELA
	IsVisible           bool             // SVIS
	ShowBracket         bool             // SSUP
	Image               biff.String      // IMGF
	Surface             biff.String      // SURF
	IsReflectionEnabled *bool            // REEN

	Common
}

func NewSpinner() *Spinner {
	return &Spinner{
		TimerInterval: 100,
		Height:        60,
		Length:        80,
		Damping:       0.9879,
		Elasticity:    0.3,
		IsVisible:     true,
		ShowBracket:   true,
	}
}

func (*Spinner) Type() Type { return TypeSpinner }

func (s *Spinner) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &s.Center),
		biff.F32("ROTA", &s.Rotation),
		biff.Str("MATR", &s.Material),
		biff.Bool("TMON", &s.TimerEnabled),
		biff.I32("TMIN", &s.TimerInterval),
		biff.F32("HIGH", &s.Height),
		biff.F32("LGTH", &s.Length),
		biff.F32("AFRC", &s.Damping),
		biff.F32("SMAX", &s.AngleMax),
		biff.F32("SMIN", &s.AngleMin),
		biff.F32("SELA", &s.Elasticity),
		biff.Bool("SVIS", &s.IsVisible),
		biff.Bool("SSUP", &s.ShowBracket),
		biff.Wide("NAME", &s.Name),
		biff.Str("IMGF", &s.Image),
		biff.Str("SURF", &s.Surface),
		biff.Optional("REEN", &s.IsReflectionEnabled, biff.Bool),
	}, s.Editor.fields()...)
}
