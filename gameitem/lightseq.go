package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// LightSequencer plays light shows over the lights of a collection.
type LightSequencer struct {
	Center         vpxtype.Vertex2D // VCEN
	Collection     string           // COLC
	CenterX        float32          // CTRX
	CenterY        float32          // CTRY
	UpdateInterval int32            // UPTM
	TimerEnabled   bool             // TMON
	TimerInterval  int32            // TMIN
	Backglass      bool             // BGLS

	Common
}

func NewLightSequencer() *LightSequencer {
	return &LightSequencer{
		UpdateInterval: 25,
		TimerInterval:  100,
	}
}

func (*LightSequencer) Type() Type { return TypeLightSeq }

func (l *LightSequencer) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &l.Center),
		biff.Wide("COLC", &l.Collection),
		biff.F32("CTRX", &l.CenterX),
		biff.F32("CTRY", &l.CenterY),
		biff.I32("UPTM", &l.UpdateInterval),
		biff.Bool("TMON", &l.TimerEnabled),
		biff.I32("TMIN", &l.TimerInterval),
		biff.Wide("NAME", &l.Name),
		biff.Bool("BGLS", &l.Backglass),
	}, l.Editor.fields()...)
}
