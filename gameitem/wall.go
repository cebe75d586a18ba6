package gameitem

import "github.com/francisdb/vpxtool/biff"

// Wall is a surface: an extruded polygon outlined by drag points.
type Wall struct {
	HitEvent             bool         // HTEV
	IsDroppable          bool         // DROP
	IsFlipbook           bool         // FLIP
	IsBottomSolid        bool         // ISBS
	IsCollidable         bool         // CLDW
	TimerEnabled         bool         // TMON
	TimerInterval        int32        // TMIN
	Threshold            float32      // THRS
	Image                biff.String  // IMAG
	SideImage            biff.String  // SIMG
	SideMaterial         biff.String  // SIMA
	TopMaterial          biff.String  // TOMA
	SlingshotMaterial    biff.String  // SLMA
	HeightBottom         float32      // HTBT
	HeightTop            float32      // HTTP
	DisplayTexture       bool         // DSPT
	SlingshotForce       float32      // SLGF
	SlingshotThreshold   float32      // SLTH
	Elasticity           float32      // ELAS
	ElasticityFalloff    *float32     // ELFO
	Friction             float32      // WFCT
	Scatter              float32      // WSCT
	IsTopBottomVisible   bool         // VSBL
	SlingshotAnimation   bool         // SLGA
	IsSideVisible        bool         // SVBL
	DisableLightingTop   *float32     // DILI
	DisableLightingBelow *float32     // DILB
	IsReflectionEnabled  *bool        // REEN
	PhysicsMaterial      *biff.String // MAPH
	OverwritePhysics     *bool        // OVPH

	DragPoints []DragPoint // DPNT

	Common
}

func NewWall() *Wall {
	return &Wall{
		IsCollidable:       true,
		TimerInterval:      100,
		Threshold:          2,
		HeightTop:          50,
		SlingshotForce:     80,
		Elasticity:         0.3,
		Friction:           0.3,
		IsTopBottomVisible: true,
		SlingshotAnimation: true,
		IsSideVisible:      true,
	}
}

func (*Wall) Type() Type { return TypeWall }

func (w *Wall) fields() []biff.Field {
	f := []biff.Field{
		biff.Bool("HTEV", &w.HitEvent),
		biff.Bool("DROP", &w.IsDroppable),
		biff.Bool("FLIP", &w.IsFlipbook),
		biff.Bool("ISBS", &w.IsBottomSolid),
		biff.Bool("CLDW", &w.IsCollidable),
		biff.Bool("TMON", &w.TimerEnabled),
		biff.I32("TMIN", &w.TimerInterval),
		biff.F32("THRS", &w.Threshold),
		biff.Str("IMAG", &w.Image),
		biff.Str("SIMG", &w.SideImage),
		biff.Str("SIMA", &w.SideMaterial),
		biff.Str("TOMA", &w.TopMaterial),
		biff.Str("SLMA", &w.SlingshotMaterial),
		biff.F32("HTBT", &w.HeightBottom),
		biff.F32("HTTP", &w.HeightTop),
		biff.Wide("NAME", &w.Name),
		biff.Bool("DSPT", &w.DisplayTexture),
		biff.F32("SLGF", &w.SlingshotForce),
		biff.F32("SLTH", &w.SlingshotThreshold),
		biff.F32("ELAS", &w.Elasticity),
		biff.Optional("ELFO", &w.ElasticityFalloff, biff.F32),
		biff.F32("WFCT", &w.Friction),
		biff.F32("WSCT", &w.Scatter),
		biff.Bool("VSBL", &w.IsTopBottomVisible),
		biff.Bool("SLGA", &w.SlingshotAnimation),
		biff.Bool("SVBL", &w.IsSideVisible),
		biff.Optional("DILI", &w.DisableLightingTop, biff.F32),
		biff.Optional("DILB", &w.DisableLightingBelow, biff.F32),
		biff.Optional("REEN", &w.IsReflectionEnabled, biff.Bool),
		biff.Optional("MAPH", &w.PhysicsMaterial, biff.Str),
		biff.Optional("OVPH", &w.OverwritePhysics, biff.Bool),
	}
	f = append(f, w.Editor.fields()...)
	return append(f, dragPoints(&w.DragPoints))
}
