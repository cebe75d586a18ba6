package gameitem

import "github.com/francisdb/vpxtool/biff"

// Rubber is a rubber band stretched along drag points.
type Rubber struct {
	Height              float32      // HTTP
	HitHeight           *float32     // HTHI
	Thickness           int32        // WDTP
	HitEvent            bool         // HTEV
	Material            biff.String  // MATR
	TimerEnabled        bool         // TMON
	TimerInterval       int32        // TMIN
	Image               biff.String  // IMAG
	Elasticity          float32      // ELAS
	ElasticityFalloff   float32      // ELFO
	Friction            float32      // RFCT
	Scatter             float32      // RSCT
	IsCollidable        bool         // CLDR
	IsVisible           bool         // RVIS
	IsReflectionEnabled *bool        // REEN
	StaticRendering     bool         // ESTR
	ShowInEditor        bool         // ESIE
	RotX                float32      // ROTX
	RotY                float32      // ROTY
	RotZ                float32      // ROTZ
	PhysicsMaterial     *biff.String // MAPH
	OverwritePhysics    *bool        // OVPH

	DragPoints []DragPoint // DPNT

	Common
}

func NewRubber() *Rubber {
	return &Rubber{
		Height:            25,
		Thickness:         8,
		TimerInterval:     100,
		Elasticity:        0.8,
		ElasticityFalloff: 0.3,
		Friction:          0.6,
		Scatter:           5,
		IsCollidable:      true,
		IsVisible:         true,
		StaticRendering:   true,
	}
}

func (*Rubber) Type() Type { return TypeRubber }

func (r *Rubber) fields() []biff.Field {
	f := []biff.Field{
		biff.F32("HTTP", &r.Height),
		biff.Optional("HTHI", &r.HitHeight, biff.F32),
		biff.I32("WDTP", &r.Thickness),
		biff.Bool("HTEV", &r.HitEvent),
		biff.Str("MATR", &r.Material),
		biff.Bool("TMON", &r.TimerEnabled),
		biff.I32("TMIN", &r.TimerInterval),
		biff.Str("IMAG", &r.Image),
		biff.F32("ELAS", &r.Elasticity),
		biff.F32("ELFO", &r.ElasticityFalloff),
		biff.F32("RFCT", &r.Friction),
		biff.F32("RSCT", &r.Scatter),
		biff.Bool("CLDR", &r.IsCollidable),
		biff.Bool("RVIS", &r.IsVisible),
		biff.Optional("REEN", &r.IsReflectionEnabled, biff.Bool),
		biff.Bool("ESTR", &r.StaticRendering),
		biff.Bool("ESIE", &r.ShowInEditor),
		biff.F32("ROTX", &r.RotX),
		biff.F32("ROTY", &r.RotY),
		biff.F32("ROTZ", &r.RotZ),
		biff.Wide("NAME", &r.Name),
		biff.Optional("MAPH", &r.PhysicsMaterial, biff.Str),
		biff.Optional("OVPH", &r.OverwritePhysics, biff.Bool),
	}
	f = append(f, r.Editor.fields()...)
	return append(f, dragPoints(&r.DragPoints))
}
