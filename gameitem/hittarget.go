package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// TargetType selects between drop targets and hit targets.
type TargetType uint32

const (
	DropTargetBeveled TargetType = iota + 1
	DropTargetSimple
	HitTargetRound
	HitTargetRectangle
	HitFatTargetRectangle
	HitFatTargetSquare
	DropTargetFlatSimple
	HitFatTargetSlim
	HitTargetSlim
)

type HitTarget struct {
	Position             vpxtype.Vertex3D // VPOS
	Size                 vpxtype.Vertex3D // VSIZ
	RotZ                 float32          // ROTZ
	Image                biff.String      // IMAG
	TargetType           uint32           // TRTY
	Material             biff.String      // MATR
	IsVisible            bool             // TVIS
	LegacyMode           bool             // LEMO
	IsDropped            bool             // ISDR
	DropSpeed            float32          // DRSP
	IsReflectionEnabled  *bool            // REEN
	UseHitEvent          bool             // HTEV
	Threshold            float32          // THRS
	Elasticity           float32          // ELAS
	ElasticityFalloff    float32          // ELFO
	Friction             float32          // RFCT
	Scatter              float32          // RSCT
	IsCollidable         bool             // CLDR
	DisableLightingTop   float32          // DILI
	DisableLightingBelow float32          // DILB
	DepthBias            float32          // PIDB
	TimerEnabled         bool             // TMON
	TimerInterval        int32            // TMIN
	RaiseDelay           *uint32          // RADE
	PhysicsMaterial      *biff.String     // MAPH
	OverwritePhysics     *bool            // OVPH

	Common
}

func NewHitTarget() *HitTarget {
	return &HitTarget{
		Size:                 vpxtype.Vertex3D{X: 32, Y: 32, Z: 32},
		TargetType:           uint32(DropTargetSimple),
		IsVisible:            true,
		DropSpeed:            0.2,
		UseHitEvent:          true,
		Threshold:            2,
		Elasticity:           0.35,
		ElasticityFalloff:    0.5,
		Friction:             0.2,
		IsCollidable:         true,
		DisableLightingBelow: 1,
		TimerInterval:        100,
	}
}

func (*HitTarget) Type() Type { return TypeHitTarget }

func (h *HitTarget) fields() []biff.Field {
	return append([]biff.Field{
		vertex3D("VPOS", &h.Position),
		vertex3D("VSIZ", &h.Size),
		biff.F32("ROTZ", &h.RotZ),
		biff.Str("IMAG", &h.Image),
		biff.U32("TRTY", &h.TargetType),
		biff.Wide("NAME", &h.Name),
		biff.Str("MATR", &h.Material),
		biff.Bool("TVIS", &h.IsVisible),
		biff.Bool("LEMO", &h.LegacyMode),
		biff.Bool("ISDR", &h.IsDropped),
		biff.F32("DRSP", &h.DropSpeed),
		biff.Optional("REEN", &h.IsReflectionEnabled, biff.Bool),
		biff.Bool("HTEV", &h.UseHitEvent),
		biff.F32("THRS", &h.Threshold),
		biff.F32("ELAS", &h.Elasticity),
		biff.F32("ELFO", &h.ElasticityFalloff),
		biff.F32("RFCT", &h.Friction),
		biff.F32("RSCT", &h.Scatter),
		biff.Bool("CLDR", &h.IsCollidable),
		biff.F32("DILI", &h.DisableLightingTop),
		biff.F32("DILB", &h.DisableLightingBelow),
		biff.F32("PIDB", &h.DepthBias),
		biff.Bool("TMON", &h.TimerEnabled),
		biff.I32("TMIN", &h.TimerInterval),
		biff.Optional("RADE", &h.RaiseDelay, biff.U32),
		biff.Optional("MAPH", &h.PhysicsMaterial, biff.Str),
		biff.Optional("OVPH", &h.OverwritePhysics, biff.Bool),
	}, h.Editor.fields()...)
}
