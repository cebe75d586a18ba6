package gameitem

import "github.com/francisdb/vpxtool/biff"

// RampType selects between a flat ramp and the wire ramp variants.
type RampType uint32

const (
	RampFlat RampType = iota
	Ramp4Wire
	Ramp2Wire
	Ramp3WireLeft
	Ramp3WireRight
	Ramp1Wire
)

type Ramp struct {
	HeightBottom           float32      // HTBT
	HeightTop              float32      // HTTP
	WidthBottom            float32      // WDBT
	WidthTop               float32      // WDTP
	Material               biff.String  // MATR
	TimerEnabled           bool         // TMON
	TimerInterval          int32        // TMIN
	RampType               uint32       // TYPE
	Image                  biff.String  // IMAG
	ImageAlignment         uint32       // ALGN
	ImageWalls             bool         // IMGW
	LeftWallHeight         float32      // WLHL
	RightWallHeight        float32      // WLHR
	LeftWallHeightVisible  float32      // WVHL
	RightWallHeightVisible float32      // WVHR
	HitEvent               *bool        // HTEV
	Threshold              *float32     // THRS
	Elasticity             float32      // ELAS
	Friction               float32      // RFCT
	Scatter                float32      // RSCT
	IsCollidable           bool         // CLDR
	IsVisible              bool         // RVIS
	IsReflectionEnabled    *bool        // REEN
	DepthBias              float32      // RADB
	WireDiameter           float32      // RADI
	WireDistanceX          float32      // RADX
	WireDistanceY          float32      // RADY
	PhysicsMaterial        *biff.String // MAPH
	OverwritePhysics       *bool        // OVPH

	DragPoints []DragPoint // DPNT

	Common
}

func NewRamp() *Ramp {
	return &Ramp{
		HeightTop:              50,
		WidthBottom:            75,
		WidthTop:               60,
		TimerInterval:          100,
		ImageWalls:             true,
		LeftWallHeight:         62,
		RightWallHeight:        62,
		LeftWallHeightVisible:  30,
		RightWallHeightVisible: 30,
		Elasticity:             0.3,
		Friction:               0.3,
		IsCollidable:           true,
		IsVisible:              true,
		WireDiameter:           8,
		WireDistanceX:          38,
		WireDistanceY:          88,
	}
}

func (*Ramp) Type() Type { return TypeRamp }

func (r *Ramp) fields() []biff.Field {
	f := []biff.Field{
		biff.F32("HTBT", &r.HeightBottom),
		biff.F32("HTTP", &r.HeightTop),
		biff.F32("WDBT", &r.WidthBottom),
		biff.F32("WDTP", &r.WidthTop),
		biff.Str("MATR", &r.Material),
		biff.Bool("TMON", &r.TimerEnabled),
		biff.I32("TMIN", &r.TimerInterval),
		biff.U32("TYPE", &r.RampType),
		biff.Wide("NAME", &r.Name),
		biff.Str("IMAG", &r.Image),
		biff.U32("ALGN", &r.ImageAlignment),
		biff.Bool("IMGW", &r.ImageWalls),
		biff.F32("WLHL", &r.LeftWallHeight),
		biff.F32("WLHR", &r.RightWallHeight),
		biff.F32("WVHL", &r.LeftWallHeightVisible),
		biff.F32("WVHR", &r.RightWallHeightVisible),
		biff.Optional("HTEV", &r.HitEvent, biff.Bool),
		biff.Optional("THRS", &r.Threshold, biff.F32),
		biff.F32("ELAS", &r.Elasticity),
		biff.F32("RFCT", &r.Friction),
		biff.F32("RSCT", &r.Scatter),
		biff.Bool("CLDR", &r.IsCollidable),
		biff.Bool("RVIS", &r.IsVisible),
		biff.Optional("REEN", &r.IsReflectionEnabled, biff.Bool),
		biff.F32("RADB", &r.DepthBias),
		biff.F32("RADI", &r.WireDiameter),
		biff.F32("RADX", &r.WireDistanceX),
		biff.F32("RADY", &r.WireDistanceY),
		biff.Optional("MAPH", &r.PhysicsMaterial, biff.Str),
		biff.Optional("OVPH", &r.OverwritePhysics, biff.Bool),
	}
	f = append(f, r.Editor.fields()...)
	return append(f, dragPoints(&r.DragPoints))
}
