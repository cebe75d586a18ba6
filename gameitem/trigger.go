package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// TriggerShape selects the mesh of a trigger.
type TriggerShape uint32

const (
	TriggerNone TriggerShape = iota
	TriggerWireA
	TriggerStar
	TriggerWireB
	TriggerButton
	TriggerWireC
	TriggerWireD
	TriggerInder
)

type Trigger struct {
	Center              vpxtype.Vertex2D // VCEN
	Radius              float32          // RADI
	Rotation            float32          // ROTA
	WireThickness       *float32         // WITI
	ScaleX              float32          // SCAX
	ScaleY              float32          // SCAY
	TimerEnabled        bool             // TMON
	TimerInterval       int32            // TMIN
	Material            biff.String      // MATR
	Surface             biff.String      // SURF
	IsVisible           bool             // VSBL
	IsEnabled           bool             // EBLD
	HitHeight           float32          // THOT
	Shape               uint32           // SHAP
	AnimSpeed           float32          // ANSP
	IsReflectionEnabled *bool            // REEN

	DragPoints []DragPoint // DPNT

	Common
}

func NewTrigger() *Trigger {
	return &Trigger{
		Radius:        25,
		ScaleX:        1,
		ScaleY:        1,
		TimerInterval: 100,
		IsVisible:     true,
		IsEnabled:     true,
		HitHeight:     50,
		Shape:         uint32(TriggerWireA),
		AnimSpeed:     1,
	}
}

func (*Trigger) Type() Type { return TypeTrigger }

func (t *Trigger) fields() []biff.Field {
	f := []biff.Field{
		vertex2D("VCEN", &t.Center),
		biff.F32("RADI", &t.Radius),
		biff.F32("ROTA", &t.Rotation),
		biff.Optional("WITI", &t.WireThickness, biff.F32),
		biff.F32("SCAX", &t.ScaleX),
		biff.F32("SCAY", &t.ScaleY),
		biff.Bool("TMON", &t.TimerEnabled),
		biff.I32("TMIN", &t.TimerInterval),
		biff.Str("MATR", &t.Material),
		biff.Str("SURF", &t.Surface),
		biff.Bool("VSBL", &t.IsVisible),
		biff.Bool("EBLD", &t.IsEnabled),
		biff.F32("THOT", &t.HitHeight),
		biff.Wide("NAME", &t.Name),
		biff.U32("SHAP", &t.Shape),
		biff.F32("ANSP", &t.AnimSpeed),
		biff.Optional("REEN", &t.IsReflectionEnabled, biff.Bool),
	}
	f = append(f, t.Editor.fields()...)
	return append(f, dragPoints(&t.DragPoints))
}
