package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

type Bumper struct {
	Center              vpxtype.Vertex2D // VCEN
	Radius              float32          // RADI
	Force               float32          // FORC
	Scatter             *float32         // BSCT
	HeightScale         float32          // HISC
	RingSpeed           float32          // RISP
	Orientation         float32          // ORIN
	RingDropOffset      *float32         // RDLI
	TimerEnabled        bool             // TMON
	TimerInterval       int32            // TMIN
	CapMaterial         biff.String      // MATR
	BaseMaterial        biff.String      // BAMA
	SocketMaterial      biff.String      // SKMA
	RingMaterial        biff.String      // RIMA
	Surface             biff.String      // SURF
	Threshold           float32          // THRS
	IsCapVisible        bool             // CAVI
	IsBaseVisible       bool             // BSVS
	IsRingVisible       bool             // RIVS
	IsSocketVisible     bool             // SKVS
	HitEvent            bool             // HAHE
	IsCollidable        bool             // COLI
	IsReflectionEnabled *bool            // REEN

	Common
}

func NewBumper() *Bumper {
	return &Bumper{
		Radius:          45,
		Force:           15,
		HeightScale:     90,
		RingSpeed:       0.5,
		TimerInterval:   100,
		Threshold:       1,
		IsCapVisible:    true,
		IsBaseVisible:   true,
		IsRingVisible:   true,
		IsSocketVisible: true,
		HitEvent:        true,
		IsCollidable:    true,
	}
}

func (*Bumper) Type() Type { return TypeBumper }

func (b *Bumper) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &b.Center),
		biff.F32("RADI", &b.Radius),
		biff.F32("FORC", &b.Force),
		biff.Optional("BSCT", &b.Scatter, biff.F32),
		biff.F32("HISC", &b.HeightScale),
		biff.F32("RISP", &b.RingSpeed),
		biff.F32("ORIN", &b.Orientation),
		biff.Optional("RDLI", &b.RingDropOffset, biff.F32),
		biff.Bool("TMON", &b.TimerEnabled),
		biff.I32("TMIN", &b.TimerInterval),
		biff.Str("MATR", &b.CapMaterial),
		biff.Str("BAMA", &b.BaseMaterial),
		biff.Str("SKMA", &b.SocketMaterial),
		biff.Str("RIMA", &b.RingMaterial),
		biff.Str("SURF", &b.Surface),
		biff.Wide("NAME", &b.Name),
		biff.F32("THRS", &b.Threshold),
		biff.Bool("CAVI", &b.IsCapVisible),
		biff.Bool("BSVS", &b.IsBaseVisible),
		biff.Bool("RIVS", &b.IsRingVisible),
		biff.Bool("SKVS", &b.IsSocketVisible),
		biff.Bool("HAHE", &b.HitEvent),
		biff.Bool("COLI", &b.IsCollidable),
		biff.Optional("REEN", &b.IsReflectionEnabled, biff.Bool),
	}, b.Editor.fields()...)
}
