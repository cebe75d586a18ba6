package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// LightState is the initial state of a light.
type LightState uint32

const (
	LightOff      LightState = 0
	LightOn       LightState = 1
	LightBlinking LightState = 2
)

type Light struct {
	Center               vpxtype.Vertex2D // VCEN
	Falloff              float32          // RADI
	FalloffPower         float32          // FAPO
	State                uint32           // STAT
	Color                vpxtype.Color    // COLR
	Color2               vpxtype.Color    // COL2
	TimerEnabled         bool             // TMON
	TimerInterval        int32            // TMIN
	BlinkPattern         biff.String      // BPAT
	OffImage             biff.String      // IMG1
	BlinkInterval        uint32           // BINT
	Intensity            float32          // BWTH
	TransmissionScale    float32          // TRMS
	Surface              biff.String      // SURF
	IsBackglass          bool             // BGLS
	DepthBias            float32          // LIDB
	FadeSpeedUp          float32          // FASP
	FadeSpeedDown        float32          // FASD
	IsBulbLight          bool             // BULT
	IsImageMode          bool             // IMMO
	ShowBulbMesh         bool             // SHBM
	HasStaticBulbMesh    *bool            // STBM
	ShowReflectionOnBall bool             // SHRB
	MeshRadius           float32          // BMSC
	BulbModulateVsAdd    float32          // BMVO
	BulbHaloHeight       float32          // BHHI
	Shadows              *uint32          // SHDW
	Fader                *uint32          // FADE
	IsVisible            *bool            // VSBL

	DragPoints []DragPoint // DPNT

	Common
}

func NewLight() *Light {
	return &Light{
		Falloff:              50,
		FalloffPower:         2,
		Color:                vpxtype.RGB(255, 169, 87),
		Color2:               vpxtype.RGB(255, 169, 87),
		TimerInterval:        100,
		BlinkPattern:         biff.NewString("10"),
		BlinkInterval:        125,
		Intensity:            1,
		TransmissionScale:    0.5,
		FadeSpeedUp:          0.2,
		FadeSpeedDown:        0.2,
		ShowReflectionOnBall: true,
		MeshRadius:           20,
		BulbModulateVsAdd:    0.9,
		BulbHaloHeight:       28,
	}
}

func (*Light) Type() Type { return TypeLight }

func (l *Light) fields() []biff.Field {
	f := []biff.Field{
		vertex2D("VCEN", &l.Center),
		biff.F32("RADI", &l.Falloff),
		biff.F32("FAPO", &l.FalloffPower),
		biff.U32("STAT", &l.State),
		color("COLR", &l.Color),
		color("COL2", &l.Color2),
		biff.Bool("TMON", &l.TimerEnabled),
		biff.I32("TMIN", &l.TimerInterval),
		biff.Str("BPAT", &l.BlinkPattern),
		biff.Str("IMG1", &l.OffImage),
		biff.U32("BINT", &l.BlinkInterval),
		biff.F32("BWTH", &l.Intensity),
		biff.F32("TRMS", &l.TransmissionScale),
		biff.Str("SURF", &l.Surface),
		biff.Wide("NAME", &l.Name),
		biff.Bool("BGLS", &l.IsBackglass),
		biff.F32("LIDB", &l.DepthBias),
		biff.F32("FASP", &l.FadeSpeedUp),
		biff.F32("FASD", &l.FadeSpeedDown),
		biff.Bool("BULT", &l.IsBulbLight),
		biff.Bool("IMMO", &l.IsImageMode),
		biff.Bool("SHBM", &l.ShowBulbMesh),
		biff.Optional("STBM", &l.HasStaticBulbMesh, biff.Bool),
		biff.Bool("SHRB", &l.ShowReflectionOnBall),
		biff.F32("BMSC", &l.MeshRadius),
		biff.F32("BMVO", &l.BulbModulateVsAdd),
		biff.F32("BHHI", &l.BulbHaloHeight),
		biff.Optional("SHDW", &l.Shadows, biff.U32),
		biff.Optional("FADE", &l.Fader, biff.U32),
		biff.Optional("VSBL", &l.IsVisible, biff.Bool),
	}
	f = append(f, l.Editor.fields()...)
	return append(f, dragPoints(&l.DragPoints))
}
