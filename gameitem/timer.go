package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// Timer fires a script event at a fixed interval.
type Timer struct {
	Center        vpxtype.Vertex2D // VCEN
	TimerEnabled  bool             // TMON
	TimerInterval int32            // TMIN
	Backglass     bool             // BGLS

	Common
}

func NewTimer() *Timer {
	return &Timer{
		TimerEnabled:  true,
		TimerInterval: 100,
	}
}

func (*Timer) Type() Type { return TypeTimer }

func (t *Timer) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &t.Center),
		biff.Bool("TMON", &t.TimerEnabled),
		biff.I32("TMIN", &t.TimerInterval),
		biff.Wide("NAME", &t.Name),
		biff.Bool("BGLS", &t.Backglass),
	}, t.Editor.fields()...)
}
